package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/calltrace/internal/transcript"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <file>",
		Short: "Print the scoring view of a transcript",
		Long:  "Normalize a transcript and print the filtered document the scoring collaborator receives: interactive turns only, with ringing, hold, and IVR preamble removed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("failed to read transcript: %w", err)
			}

			doc := transcript.FilterForScoring(transcript.Normalize(input, defaultOptions()))

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal document: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	return cmd
}
