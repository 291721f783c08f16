// Package display renders canonical transcripts for the terminal.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/calltrace/internal/transcript"
)

var (
	agentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // muted
	tsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// WriteDoc renders each turn of a document as a colored, optionally
// timestamped line: agent turns green, user turns yellow, system turns
// muted.
func WriteDoc(w io.Writer, doc transcript.Doc, timestamps bool) {
	for _, turn := range doc.Turns {
		style := styleFor(turn.Role)

		if timestamps {
			fmt.Fprintf(w, "%s ", tsStyle.Render(transcript.FormatTimestamp(turn.StartS)))
		}
		fmt.Fprintf(w, "%s %s\n", style.Render(transcript.SpeakerLabel(turn)+":"), turn.Text)
	}
}

// WritePreCallSummary prints the pre-call boundary of a document, when one
// was detected.
func WritePreCallSummary(w io.Writer, doc transcript.Doc) {
	if doc.CallStartMs == nil {
		fmt.Fprintln(w, systemStyle.Render("No interactive turns; entire document is pre-call."))
		return
	}
	if doc.PreCallDurationMs == 0 {
		return
	}
	fmt.Fprintf(w, "%s\n",
		systemStyle.Render(fmt.Sprintf("Pre-call preamble: %.1fs (conversation starts at %s)",
			float64(doc.PreCallDurationMs)/1000,
			transcript.FormatTimestamp(float64(*doc.CallStartMs)/1000))))
}

func styleFor(role transcript.SpeakerRole) lipgloss.Style {
	switch role {
	case transcript.RoleAgent:
		return agentStyle
	case transcript.RoleSystem:
		return systemStyle
	default:
		return userStyle
	}
}
