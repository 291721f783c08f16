package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/calltrace/internal/transcript"
)

func newNormalizeCmd() *cobra.Command {
	var (
		agentName string
		userName  string
		merge     bool
		source    string
		language  string
		asText    bool
	)

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Normalize a transcript file into the canonical document",
		Long:  "Normalize a transcript file (ASR JSON, live-conversation JSON, or plain text) into the canonical document and print it as JSON, or as plain text with --text.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("failed to read transcript: %w", err)
			}

			doc := transcript.Normalize(input, buildOptions(cmd, agentName, userName, merge, source, language))

			if asText {
				fmt.Fprintln(cmd.OutOrStdout(), transcript.ToText(doc, true))
				return nil
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal document: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&agentName, "agent-name", "", "Fallback display name for unnamed agent turns")
	cmd.Flags().StringVar(&userName, "user-name", "", "Fallback display name for unnamed user turns")
	cmd.Flags().BoolVar(&merge, "merge", false, "Merge consecutive turns from the same speaker")
	cmd.Flags().StringVar(&source, "source", "", "Override the source tag recorded in metadata")
	cmd.Flags().StringVar(&language, "lang", "", "Language code recorded in metadata")
	cmd.Flags().BoolVar(&asText, "text", false, "Print the rendered text instead of JSON")

	return cmd
}

// buildOptions layers explicit flags over the config file defaults.
func buildOptions(cmd *cobra.Command, agentName, userName string, merge bool, source, language string) transcript.Options {
	opts := defaultOptions()
	if agentName != "" {
		opts.AgentName = agentName
	}
	if userName != "" {
		opts.UserName = userName
	}
	if cmd.Flags().Changed("merge") {
		opts.Merge = merge
	}
	if source != "" {
		opts.Source = source
	}
	if language != "" {
		opts.Language = language
	}
	return opts
}
