package cli

import (
	"github.com/spf13/cobra"

	"github.com/lexiqai/speech-synth/internal/tts"
)

type audioProfileOptions struct {
	text       string
	output     string
	profileIDs []string
	voiceName  string
	dryRun     bool
}

// NewAudioProfileCommand creates the command that synthesizes text optimized
// for playback on a class of hardware
func NewAudioProfileCommand(deps *Deps) *cobra.Command {
	opts := &audioProfileOptions{}

	cmd := &cobra.Command{
		Use:   "audio-profile --text TEXT --output FILE --effects_profile_id ID",
		Short: "Synthesize text with an audio effects profile",
		Long: `Synthesize text, specifying an audio profile to optimize the synthetic speech
for playback on different types of hardware.

--effects_profile_id may be repeated; profiles are applied in the order given.
Available audio profiles:
https://cloud.google.com/text-to-speech/docs/audio-profiles#available_audio_profiles`,
		Example: `  audio-profile --text "hello" --effects_profile_id "telephony-class-application" --output "output.mp3"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runAudioProfile(cmd, deps, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.text, "text", "", "The text from which to synthesize speech.")
	flags.StringVar(&opts.output, "output", "", "The output mp3 file.")
	flags.StringArrayVar(&opts.profileIDs, "effects_profile_id", nil, "The audio effects profile id to be applied.")
	flags.StringVar(&opts.voiceName, "voice_name", "", "Optional voice name, e.g. en-US-Standard-C.")
	flags.BoolVar(&opts.dryRun, "dry_run", false, "Print the request as JSON instead of calling the service.")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("effects_profile_id")

	return cmd
}

func runAudioProfile(cmd *cobra.Command, deps *Deps, opts *audioProfileOptions) error {
	voice := tts.ProfilePreset(deps.Config.LanguageCode)
	voice.Name = opts.voiceName
	req := tts.BuildRequest(tts.TextInput(opts.text), voice, tts.MP3WithProfiles(opts.profileIDs...))

	deps.Logger.Debug().
		Strs("effects_profile_ids", opts.profileIDs).
		Str("output", opts.output).
		Msg("Built synthesis request")

	if opts.dryRun {
		return printRequest(cmd.OutOrStdout(), req)
	}
	return synthesize(cmd, deps, req, opts.output)
}
