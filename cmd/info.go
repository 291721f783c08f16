package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/calltrace/internal/display"
	"github.com/grovetools/calltrace/internal/transcript"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Show turn counts, duration, and pre-call boundary for a transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("failed to read transcript: %w", err)
			}

			doc := transcript.Normalize(input, defaultOptions())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Source:   %s\n", doc.Metadata.Source)
			fmt.Fprintf(out, "Turns:    %d\n", len(doc.Turns))
			fmt.Fprintf(out, "Duration: %s\n", transcript.FormatTimestamp(doc.DurationS()))
			if doc.Metadata.AgentName != "" {
				fmt.Fprintf(out, "Agent:    %s\n", doc.Metadata.AgentName)
			}
			if doc.Metadata.UserName != "" {
				fmt.Fprintf(out, "Customer: %s\n", doc.Metadata.UserName)
			}
			fmt.Fprintln(out)

			display.PrintDocInfoTable(doc, out)
			fmt.Fprintln(out)
			display.WritePreCallSummary(out, doc)
			return nil
		},
	}

	return cmd
}
