package cli

import (
	"errors"

	"github.com/lexiqai/speech-synth/internal/tts"
)

var errInputFlags = errors.New("exactly one of --text or --ssml is required")

// InputFile names a file holding either plain text or SSML
type InputFile struct {
	Kind tts.InputKind
	Path string
}

// ResolveInputFile picks the input file from the --text and --ssml flag values.
// Supplying both or neither is a configuration error; no file is touched.
func ResolveInputFile(textPath, ssmlPath string) (InputFile, error) {
	switch {
	case textPath != "" && ssmlPath == "":
		return InputFile{Kind: tts.InputText, Path: textPath}, nil
	case ssmlPath != "" && textPath == "":
		return InputFile{Kind: tts.InputSSML, Path: ssmlPath}, nil
	default:
		return InputFile{}, tts.NewConfigError("resolve input", errInputFlags)
	}
}

// LoadInput reads the whole file into the matching input variant
func LoadInput(f InputFile, readFile func(string) ([]byte, error)) (tts.InputSource, error) {
	data, err := readFile(f.Path)
	if err != nil {
		return tts.InputSource{}, tts.NewIOError("read "+f.Kind.String()+" file", err)
	}

	if f.Kind == tts.InputSSML {
		return tts.SSMLInput(string(data)), nil
	}
	return tts.TextInput(string(data)), nil
}
