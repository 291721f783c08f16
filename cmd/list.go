package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/calltrace/internal/display"
	"github.com/grovetools/calltrace/internal/library"
)

func newListCmd() *cobra.Command {
	var jsonOutput bool
	var sourceFilter string

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List transcript files under a directory",
		Long:  "List transcript files (.json, .txt) under a directory, with their detected producer format, turn count, and duration.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			scanner := library.NewScanner()
			entries, err := scanner.Scan(dir)
			if err != nil {
				return fmt.Errorf("failed to scan %s: %w", dir, err)
			}

			if sourceFilter != "" {
				var filtered []library.Entry
				for _, e := range entries {
					if strings.Contains(strings.ToLower(e.Source), strings.ToLower(sourceFilter)) {
						filtered = append(filtered, e)
					}
				}
				entries = filtered
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No transcript files found.")
				return nil
			}

			if jsonOutput {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal entries: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				display.PrintLibraryTable(entries, cmd.OutOrStdout())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVarP(&sourceFilter, "source", "s", "", "Filter by detected source (case-insensitive substring match)")

	return cmd
}
