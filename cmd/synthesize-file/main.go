// Command synthesize-file synthesizes a text or SSML file into output.mp3 in the working directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lexiqai/speech-synth/internal/cli"
	"github.com/lexiqai/speech-synth/internal/config"
	"github.com/lexiqai/speech-synth/internal/observability"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use fmt for fatal errors before logger is initialized
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.LogLevel, cfg.LogPretty)
	deps := cli.DefaultDeps(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, cli.NewSynthesizeFileCommand(deps), deps)
	stop()
	os.Exit(code)
}
