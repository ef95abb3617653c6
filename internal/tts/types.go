package tts

import (
	"context"

	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
)

// InputKind tags which variant of InputSource is populated
type InputKind int

const (
	InputText InputKind = iota // Plain text
	InputSSML                  // Speech Synthesis Markup Language
)

func (k InputKind) String() string {
	switch k {
	case InputText:
		return "text"
	case InputSSML:
		return "ssml"
	default:
		return "unknown"
	}
}

// InputSource is the payload submitted for synthesis.
// Exactly one variant exists per value; build it with TextInput or SSMLInput.
type InputSource struct {
	Kind  InputKind
	Value string
}

// TextInput returns a plain text input
func TextInput(text string) InputSource {
	return InputSource{Kind: InputText, Value: text}
}

// SSMLInput returns an SSML input
func SSMLInput(ssml string) InputSource {
	return InputSource{Kind: InputSSML, Value: ssml}
}

// Gender is the requested SSML voice gender
type Gender int

const (
	GenderUnspecified Gender = iota
	GenderMale
	GenderFemale
	GenderNeutral
)

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	case GenderNeutral:
		return "neutral"
	default:
		return "unspecified"
	}
}

// Encoding is the audio encoding of the synthesized content
type Encoding int

const (
	EncodingMP3 Encoding = iota
	EncodingLinear16
	EncodingOggOpus
)

func (e Encoding) String() string {
	switch e {
	case EncodingLinear16:
		return "linear16"
	case EncodingOggOpus:
		return "ogg_opus"
	default:
		return "mp3"
	}
}

// VoiceSelection describes the voice to synthesize with.
// Values are not validated locally, the service accepts or rejects them.
type VoiceSelection struct {
	LanguageCode string
	Gender       Gender
	Name         string // Optional voice name, e.g. en-US-Standard-C
}

// AudioConfig describes the returned audio.
// EffectsProfileIDs are applied by the service in the listed order.
type AudioConfig struct {
	Encoding          Encoding
	EffectsProfileIDs []string
}

// Synthesizer is the subset of the Google Text-to-Speech client used here.
// *texttospeech.Client satisfies it.
type Synthesizer interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	ListVoices(ctx context.Context, req *texttospeechpb.ListVoicesRequest, opts ...gax.CallOption) (*texttospeechpb.ListVoicesResponse, error)
	Close() error
}
