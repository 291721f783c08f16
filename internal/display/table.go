package display

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grovetools/calltrace/internal/library"
	"github.com/grovetools/calltrace/internal/transcript"
)

// PrintLibraryTable prints discovered transcript files in a formatted table.
func PrintLibraryTable(entries []library.Entry, writer io.Writer) {
	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "FILE\tSOURCE\tTURNS\tDURATION\tMODIFIED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			e.Path, e.Source, e.Turns,
			transcript.FormatTimestamp(e.DurationS),
			e.ModifiedAt.Format("2006-01-02 15:04"))
	}
	w.Flush()
}

// PrintDocInfoTable prints per-role turn counts and timing for one document.
func PrintDocInfoTable(doc transcript.Doc, writer io.Writer) {
	counts := map[transcript.SpeakerRole]int{}
	talk := map[transcript.SpeakerRole]float64{}
	for _, t := range doc.Turns {
		counts[t.Role]++
		talk[t.Role] += t.EndS - t.StartS
	}

	w := tabwriter.NewWriter(writer, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ROLE\tTURNS\tTALK TIME")
	for _, role := range []transcript.SpeakerRole{transcript.RoleAgent, transcript.RoleUser, transcript.RoleSystem} {
		fmt.Fprintf(w, "%s\t%d\t%.1fs\n", role.Display(), counts[role], talk[role])
	}
	w.Flush()
}
