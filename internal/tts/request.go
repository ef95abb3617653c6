package tts

import (
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// DefaultLanguageCode is the voice locale used when none is configured
const DefaultLanguageCode = "en-US"

// ProfilePreset is the voice used by the audio profile command.
// Gender is left to the service.
func ProfilePreset(languageCode string) VoiceSelection {
	return VoiceSelection{LanguageCode: orDefault(languageCode), Gender: GenderUnspecified}
}

// FilePreset is the voice used by the file synthesis command
func FilePreset(languageCode string) VoiceSelection {
	return VoiceSelection{LanguageCode: orDefault(languageCode), Gender: GenderFemale}
}

// MP3WithProfiles returns an MP3 audio config applying the given effects profiles in order
func MP3WithProfiles(profileIDs ...string) AudioConfig {
	cfg := AudioConfig{Encoding: EncodingMP3}
	if len(profileIDs) > 0 {
		cfg.EffectsProfileIDs = append([]string(nil), profileIDs...)
	}
	return cfg
}

// BuildRequest maps the input, voice and audio config onto a SynthesizeSpeechRequest.
// It has no side effects.
func BuildRequest(input InputSource, voice VoiceSelection, audio AudioConfig) *texttospeechpb.SynthesizeSpeechRequest {
	return &texttospeechpb.SynthesizeSpeechRequest{
		Input: buildInput(input),
		// Note: the voice can also be specified by name.
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: voice.LanguageCode,
			Name:         voice.Name,
			SsmlGender:   ssmlGender(voice.Gender),
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding:    audioEncoding(audio.Encoding),
			EffectsProfileId: append([]string(nil), audio.EffectsProfileIDs...),
		},
	}
}

func buildInput(input InputSource) *texttospeechpb.SynthesisInput {
	if input.Kind == InputSSML {
		return &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Ssml{Ssml: input.Value},
		}
	}
	return &texttospeechpb.SynthesisInput{
		InputSource: &texttospeechpb.SynthesisInput_Text{Text: input.Value},
	}
}

func ssmlGender(g Gender) texttospeechpb.SsmlVoiceGender {
	switch g {
	case GenderMale:
		return texttospeechpb.SsmlVoiceGender_MALE
	case GenderFemale:
		return texttospeechpb.SsmlVoiceGender_FEMALE
	case GenderNeutral:
		return texttospeechpb.SsmlVoiceGender_NEUTRAL
	default:
		return texttospeechpb.SsmlVoiceGender_SSML_VOICE_GENDER_UNSPECIFIED
	}
}

func audioEncoding(e Encoding) texttospeechpb.AudioEncoding {
	switch e {
	case EncodingLinear16:
		return texttospeechpb.AudioEncoding_LINEAR16
	case EncodingOggOpus:
		return texttospeechpb.AudioEncoding_OGG_OPUS
	default:
		return texttospeechpb.AudioEncoding_MP3
	}
}

func orDefault(languageCode string) string {
	if languageCode == "" {
		return DefaultLanguageCode
	}
	return languageCode
}
