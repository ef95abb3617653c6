package pipeline

import (
	"context"
	"errors"
	"io"
	"time"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/rs/zerolog"

	"github.com/lexiqai/speech-synth/internal/audio"
	"github.com/lexiqai/speech-synth/internal/observability"
	"github.com/lexiqai/speech-synth/internal/resilience"
	"github.com/lexiqai/speech-synth/internal/tts"
)

var errEmptyAudio = errors.New("service returned empty audio content")

// Options configures a Pipeline
type Options struct {
	Timeout time.Duration // Per attempt, zero means no deadline
	Retry   *resilience.RetryConfig
	Metrics *observability.Metrics
	Logger  zerolog.Logger
}

// Pipeline runs one synthesis request against an injected client and writes the result
type Pipeline struct {
	client  tts.Synthesizer
	timeout time.Duration
	retry   *resilience.RetryConfig
	metrics *observability.Metrics
	logger  zerolog.Logger
}

// New creates a pipeline around an authenticated client
func New(client tts.Synthesizer, opts Options) *Pipeline {
	if opts.Retry == nil {
		opts.Retry = resilience.DefaultRetryConfig()
	}
	if opts.Metrics == nil {
		opts.Metrics = observability.NewMetrics("unknown")
	}
	return &Pipeline{
		client:  client,
		timeout: opts.Timeout,
		retry:   opts.Retry,
		metrics: opts.Metrics,
		logger:  opts.Logger,
	}
}

// Synthesize makes the remote call and returns the audio content.
// Every failure is returned as a *tts.Error of KindRemote.
func (p *Pipeline) Synthesize(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) ([]byte, error) {
	var content []byte

	p.metrics.RecordSynthesisStart()
	err := resilience.Retry(ctx, func(ctx context.Context) error {
		callCtx, cancel := p.callContext(ctx)
		defer cancel()

		resp, err := p.client.SynthesizeSpeech(callCtx, req)
		if err != nil {
			return err
		}
		content = resp.GetAudioContent()
		return nil
	}, p.retry, resilience.IsRetryableStatus, p.logger)

	if err == nil && len(content) == 0 {
		err = errEmptyAudio
	}
	p.metrics.RecordSynthesisEnd(err == nil)

	if err != nil {
		p.logger.Error().Err(err).Msg("Speech synthesis failed")
		return nil, tts.NewRemoteError("synthesize speech", err)
	}

	p.logger.Debug().Int("bytes", len(content)).Msg("Speech synthesized")
	return content, nil
}

// Run synthesizes req and writes the audio to outputPath, then prints the
// confirmation line to out. Nothing is written when synthesis fails.
func (p *Pipeline) Run(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, outputPath string, out io.Writer) error {
	content, err := p.Synthesize(ctx, req)
	if err != nil {
		return err
	}

	if err := audio.WriteFile(outputPath, content); err != nil {
		p.logger.Error().Err(err).Str("output", outputPath).Msg("Writing audio failed")
		return tts.NewIOError("write "+outputPath, err)
	}
	p.metrics.RecordAudioBytes(len(content))

	p.logger.Info().
		Str("output", outputPath).
		Int("bytes", len(content)).
		Msg("Audio content written")
	audio.ReportWritten(out, outputPath)
	return nil
}

// ListVoices returns the voices supported for languageCode, or all voices when empty
func (p *Pipeline) ListVoices(ctx context.Context, languageCode string) ([]*texttospeechpb.Voice, error) {
	var voices []*texttospeechpb.Voice

	err := resilience.Retry(ctx, func(ctx context.Context) error {
		callCtx, cancel := p.callContext(ctx)
		defer cancel()

		resp, err := p.client.ListVoices(callCtx, &texttospeechpb.ListVoicesRequest{LanguageCode: languageCode})
		if err != nil {
			return err
		}
		voices = resp.GetVoices()
		return nil
	}, p.retry, resilience.IsRetryableStatus, p.logger)
	if err != nil {
		return nil, tts.NewRemoteError("list voices", err)
	}

	return voices, nil
}

func (p *Pipeline) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}
