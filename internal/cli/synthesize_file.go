package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexiqai/speech-synth/internal/tts"
)

// FileOutputPath is where synthesize-file always writes its audio
const FileOutputPath = "output.mp3"

type synthesizeFileOptions struct {
	textPath  string
	ssmlPath  string
	voiceName string
	dryRun    bool
}

// NewSynthesizeFileCommand creates the command that synthesizes the contents
// of a text or SSML file into output.mp3
func NewSynthesizeFileCommand(deps *Deps) *cobra.Command {
	opts := &synthesizeFileOptions{}

	cmd := &cobra.Command{
		Use:   "synthesize-file (--text FILE | --ssml FILE)",
		Short: "Synthesize speech from a text or SSML file",
		Long: `Synthesize speech from a text or SSML file and write it to output.mp3.

The voice is the configured language (TTS_LANGUAGE_CODE, default en-US) with a
female SSML gender. SSML must be well-formed according to
https://www.w3.org/TR/speech-synthesis/.`,
		Example: `  synthesize-file --text resources/hello.txt
  synthesize-file --ssml resources/hello.ssml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSynthesizeFile(cmd, deps, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.textPath, "text", "", "The text file from which to synthesize speech.")
	flags.StringVar(&opts.ssmlPath, "ssml", "", "The ssml file from which to synthesize speech.")
	flags.StringVar(&opts.voiceName, "voice_name", "", "Optional voice name, e.g. en-US-Standard-C.")
	flags.BoolVar(&opts.dryRun, "dry_run", false, "Print the request as JSON instead of calling the service.")
	cmd.MarkFlagsMutuallyExclusive("text", "ssml")
	cmd.MarkFlagsOneRequired("text", "ssml")

	return cmd
}

func runSynthesizeFile(cmd *cobra.Command, deps *Deps, opts *synthesizeFileOptions) error {
	file, err := ResolveInputFile(opts.textPath, opts.ssmlPath)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	input, err := LoadInput(file, deps.readFile)
	if err != nil {
		return err
	}
	deps.Logger.Debug().
		Str("input_kind", input.Kind.String()).
		Str("path", file.Path).
		Int("length", len(input.Value)).
		Msg("Loaded synthesis input")

	voice := tts.FilePreset(deps.Config.LanguageCode)
	voice.Name = opts.voiceName
	req := tts.BuildRequest(input, voice, tts.MP3WithProfiles())

	if opts.dryRun {
		return printRequest(cmd.OutOrStdout(), req)
	}
	return synthesize(cmd, deps, req, FileOutputPath)
}
