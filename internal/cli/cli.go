// Package cli wires the speech synthesis commands: flag parsing, request
// construction, the synthesis pipeline and error reporting.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/lexiqai/speech-synth/internal/config"
	"github.com/lexiqai/speech-synth/internal/observability"
	"github.com/lexiqai/speech-synth/internal/pipeline"
	"github.com/lexiqai/speech-synth/internal/resilience"
	"github.com/lexiqai/speech-synth/internal/tts"
)

// ClientFactory creates an authenticated synthesis client
type ClientFactory func(ctx context.Context) (tts.Synthesizer, error)

// Deps are the collaborators a command needs
type Deps struct {
	Config    *config.Config
	NewClient ClientFactory
	ReadFile  func(name string) ([]byte, error) // defaults to os.ReadFile
	Logger    zerolog.Logger
}

// DefaultDeps builds the production dependencies backed by Google Cloud Text-to-Speech
func DefaultDeps(cfg *config.Config) *Deps {
	return &Deps{
		Config: cfg,
		NewClient: func(ctx context.Context) (tts.Synthesizer, error) {
			return tts.NewGoogleClient(ctx, cfg)
		},
		ReadFile: os.ReadFile,
		Logger:   observability.WithCorrelationID(""),
	}
}

func (d *Deps) readFile(name string) ([]byte, error) {
	if d.ReadFile == nil {
		return os.ReadFile(name)
	}
	return d.ReadFile(name)
}

// Execute runs cmd and returns the process exit status
func Execute(ctx context.Context, cmd *cobra.Command, deps *Deps) int {
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		kind := tts.KindOf(err)
		if kind == tts.KindUnknown {
			// cobra flag parsing and flag group failures
			kind = tts.KindConfig
		}
		observability.NewMetrics(cmd.Name()).RecordError(kind.String())
		deps.Logger.Debug().Err(err).Str("kind", kind.String()).Msg("Command failed")
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}

	pushMetrics(deps)

	if err != nil {
		return 1
	}
	return 0
}

func pushMetrics(deps *Deps) {
	cfg := deps.Config
	if !cfg.MetricsEnabled || cfg.PushgatewayURL == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := observability.PushMetrics(ctx, cfg.PushgatewayURL, cfg.MetricsJob); err != nil {
		deps.Logger.Warn().Err(err).Msg("Metrics push failed")
	}
}

func newPipeline(client tts.Synthesizer, deps *Deps, command string) *pipeline.Pipeline {
	return pipeline.New(client, pipeline.Options{
		Timeout: deps.Config.CallTimeout(),
		Retry:   resilience.RetryConfigFromConfig(deps.Config),
		Metrics: observability.NewMetrics(command),
		Logger:  deps.Logger.With().Str("command", command).Logger(),
	})
}

// synthesize creates the client, runs the request and writes outputPath
func synthesize(cmd *cobra.Command, deps *Deps, req *texttospeechpb.SynthesizeSpeechRequest, outputPath string) error {
	ctx := cmd.Context()

	client, err := deps.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	return newPipeline(client, deps, cmd.Name()).Run(ctx, req, outputPath, cmd.OutOrStdout())
}

// printRequest writes the request as indented JSON
func printRequest(w io.Writer, msg proto.Message) error {
	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
