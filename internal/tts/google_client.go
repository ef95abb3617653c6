package tts

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"google.golang.org/api/option"

	"github.com/lexiqai/speech-synth/internal/config"
)

// NewGoogleClient creates a Google Cloud Text-to-Speech client.
// Without an explicit credentials file the client falls back to Application Default Credentials.
func NewGoogleClient(ctx context.Context, cfg *config.Config) (Synthesizer, error) {
	client, err := texttospeech.NewClient(ctx, clientOptions(cfg)...)
	if err != nil {
		return nil, NewRemoteError("create texttospeech client", fmt.Errorf("texttospeech.NewClient: %w", err))
	}
	return client, nil
}

func clientOptions(cfg *config.Config) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	return opts
}
