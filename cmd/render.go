package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/calltrace/config"
	"github.com/grovetools/calltrace/internal/display"
	"github.com/grovetools/calltrace/internal/transcript"
)

func newRenderCmd() *cobra.Command {
	var timestamps bool

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a transcript file as a colored terminal conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("failed to read transcript: %w", err)
			}

			doc := transcript.Normalize(input, defaultOptions())

			ts := config.Load().Render.Timestamps
			if cmd.Flags().Changed("timestamps") {
				ts = timestamps
			}

			display.WritePreCallSummary(cmd.OutOrStdout(), doc)
			display.WriteDoc(cmd.OutOrStdout(), doc, ts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&timestamps, "timestamps", true, "Include [MM:SS] markers on each line")

	return cmd
}
