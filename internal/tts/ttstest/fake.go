// Package ttstest provides an in-memory Synthesizer for tests.
package ttstest

import (
	"context"
	"sync"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
)

// FakeSynthesizer records requests and returns canned responses
type FakeSynthesizer struct {
	mu sync.Mutex

	Audio  []byte
	Voices []*texttospeechpb.Voice
	// Errs are returned by successive calls, one per call; nil entries succeed.
	Errs []error

	Requests      []*texttospeechpb.SynthesizeSpeechRequest
	VoiceRequests []*texttospeechpb.ListVoicesRequest
	Closed        bool
}

// SynthesizeSpeech implements tts.Synthesizer
func (f *FakeSynthesizer) SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, _ ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Requests = append(f.Requests, req)
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	return &texttospeechpb.SynthesizeSpeechResponse{AudioContent: f.Audio}, nil
}

// ListVoices implements tts.Synthesizer
func (f *FakeSynthesizer) ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, _ ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.VoiceRequests = append(f.VoiceRequests, req)
	if err := f.nextErr(); err != nil {
		return nil, err
	}
	return &texttospeechpb.ListVoicesResponse{Voices: f.Voices}, nil
}

// Close implements tts.Synthesizer
func (f *FakeSynthesizer) Close() error {
	f.mu.Lock()
	f.Closed = true
	f.mu.Unlock()
	return nil
}

// Calls returns the number of synthesis calls made
func (f *FakeSynthesizer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Requests)
}

func (f *FakeSynthesizer) nextErr() error {
	if len(f.Errs) == 0 {
		return nil
	}
	err := f.Errs[0]
	f.Errs = f.Errs[1:]
	return err
}
