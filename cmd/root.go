// Package cmd implements the calltrace CLI.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/grovetools/calltrace/config"
	"github.com/grovetools/calltrace/internal/library"
	"github.com/grovetools/calltrace/internal/logging"
	"github.com/grovetools/calltrace/internal/transcript"
)

// NewRootCmd creates the root command for calltrace.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "calltrace",
		Short:         "Call transcript canonicalization and inspection",
		Long:          "Normalize call transcripts from ASR output, live-conversation logs, or pasted text into one canonical document, then render, filter, or inspect them.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// readInput loads a transcript file and decodes it into the untyped value
// the normalizer dispatches on.
func readInput(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return library.Decode(path, data), nil
}

// defaultOptions builds normalization options from the config file alone,
// for commands that expose no normalization flags of their own.
func defaultOptions() transcript.Options {
	cfg := config.Load()
	return transcript.Options{
		AgentName: cfg.Normalize.AgentName,
		UserName:  cfg.Normalize.UserName,
		Merge:     cfg.Normalize.Merge,
		Language:  cfg.Normalize.Language,
		Logger:    logging.NewLogger("cmd"),
	}
}
