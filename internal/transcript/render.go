package transcript

import (
	"fmt"
	"strings"
)

// ToText serializes a document back to readable plain text, one line per
// turn:
//
//	[MM:SS] SpeakerNameOrRole: text
//
// The speaker label falls back to the role display name when no personal
// name is known.
func ToText(doc Doc, includeTimestamps bool) string {
	var b strings.Builder
	for i, t := range doc.Turns {
		if i > 0 {
			b.WriteByte('\n')
		}
		if includeTimestamps {
			b.WriteString(FormatTimestamp(t.StartS))
			b.WriteByte(' ')
		}
		b.WriteString(SpeakerLabel(t))
		b.WriteString(": ")
		b.WriteString(t.Text)
	}
	return b.String()
}

// SpeakerLabel returns the display label for a turn: the speaker name when
// known, otherwise the role name. Never a placeholder.
func SpeakerLabel(t Turn) string {
	if t.SpeakerName != "" {
		return t.SpeakerName
	}
	return t.Role.Display()
}

// FormatTimestamp renders seconds as a bracketed [MM:SS] marker.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("[%d:%02d]", total/60, total%60)
}
