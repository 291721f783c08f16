package transcript

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// TextParser extracts turns from free-form pasted text. The default is the
// line-oriented HeuristicParser; callers with a stricter input contract can
// substitute their own implementation through Options.Parser.
type TextParser interface {
	ParseText(text string) []Turn
}

// wordsPerSecond is the speaking rate used to estimate turn duration when
// no explicit timestamps are present.
const wordsPerSecond = 2.5

var (
	timestampRe = regexp.MustCompile(`^\[(\d{1,2}):(\d{2})\]\s*`)
	speakerRe   = regexp.MustCompile(`(?i)^(AGENT|USER|CUSTOMER|SYSTEM|IVR)\s*(?:\(([^)]*)\))?\s*:\s*(.*)$`)
)

// HeuristicParser parses one utterance per line, in the form
//
//	[MM:SS] ROLE (Name): text
//
// where the timestamp and name are optional. Lines without a recognizable
// speaker marker are skipped; multi-line continuations of one utterance are
// therefore dropped rather than appended to the previous turn.
type HeuristicParser struct{}

// ParseText parses a block of plain text into ordered turns, advancing an
// internal time cursor so timestamp-less lines follow the previous turn.
func (HeuristicParser) ParseText(text string) []Turn {
	var turns []Turn
	var cursor float64

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		start := cursor
		if m := timestampRe.FindStringSubmatch(line); m != nil {
			minutes, _ := strconv.Atoi(m[1])
			seconds, _ := strconv.Atoi(m[2])
			start = float64(minutes*60 + seconds)
			line = line[len(m[0]):]
		}

		m := speakerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		role := ClassifyRole(m[1])

		var name string
		if m[2] != "" {
			name = ExtractName(m[2], role)
		}

		content := strings.TrimSpace(m[3])
		end := start + estimateDuration(content)

		turns = append(turns, Turn{
			Role:        role,
			SpeakerName: name,
			Text:        content,
			StartS:      start,
			EndS:        end,
		})
		cursor = end
	}

	return turns
}

func estimateDuration(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return float64(words) / wordsPerSecond
}
