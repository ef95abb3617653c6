package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewListVoicesCommand creates the command that lists the voices the service supports
func NewListVoicesCommand(deps *Deps) *cobra.Command {
	var languageCode string

	cmd := &cobra.Command{
		Use:   "list-voices [--language_code CODE]",
		Short: "List the available synthesis voices",
		Long: `List the voices supported by the Text-to-Speech service.

Voice names can be passed to the synthesis commands with --voice_name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runListVoices(cmd, deps, languageCode)
		},
	}

	cmd.Flags().StringVar(&languageCode, "language_code", "", "Only list voices supporting this BCP-47 language code.")

	return cmd
}

func runListVoices(cmd *cobra.Command, deps *Deps, languageCode string) error {
	ctx := cmd.Context()

	client, err := deps.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	voices, err := newPipeline(client, deps, cmd.Name()).ListVoices(ctx, languageCode)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, voice := range voices {
		fmt.Fprintf(w, "Name: %s\n", voice.GetName())
		fmt.Fprintf(w, "  Language codes: %s\n", strings.Join(voice.GetLanguageCodes(), ", "))
		fmt.Fprintf(w, "  SSML voice gender: %s\n", voice.GetSsmlGender())
		fmt.Fprintf(w, "  Natural sample rate hertz: %d\n", voice.GetNaturalSampleRateHertz())
	}
	return nil
}
