package transcript

import (
	"encoding/json"
	"strings"
)

// Field aliases checked in precedence order when reading a generic segment
// record. Producers disagree on names; the first present alias wins.
var (
	startAliases = []string{"startS", "start", "start_time", "startTime", "from", "begin", "offset"}
	endAliases   = []string{"endS", "end", "end_time", "endTime", "to", "stop"}
	roleAliases  = []string{"role", "speaker", "speaker_role", "speakerRole", "channel"}
	nameAliases  = []string{"speakerName", "speaker_name", "name"}
	profAliases  = []string{"speakerProfile", "speaker_profile", "profile", "label"}
	textAliases  = []string{"text", "content", "transcript", "message", "utterance"}
)

// normalizeSegment converts one generic producer record into one canonical
// turn. Missing numeric fields fall back to 0 (or to the resolved start for
// the end time) rather than failing.
func normalizeSegment(seg map[string]any, opts Options) Turn {
	start, _ := floatField(seg, startAliases)
	end, ok := floatField(seg, endAliases)
	if !ok || end < start {
		end = start
	}

	role := ClassifyRole(stringField(seg, roleAliases))

	name := strings.TrimSpace(stringField(seg, nameAliases))
	if role == RoleSystem || isPlaceholder(name) {
		name = ""
	}
	if name == "" {
		name = ExtractName(stringField(seg, profAliases), role)
	}
	if name == "" {
		switch role {
		case RoleAgent:
			name = opts.AgentName
		case RoleUser:
			name = opts.UserName
		}
	}

	return Turn{
		Role:        role,
		SpeakerName: name,
		Text:        strings.TrimSpace(stringField(seg, textAliases)),
		StartS:      start,
		EndS:        end,
	}
}

func floatField(m map[string]any, aliases []string) (float64, bool) {
	for _, key := range aliases {
		v, present := m[key]
		if !present {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func stringField(m map[string]any, aliases []string) string {
	for _, key := range aliases {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
