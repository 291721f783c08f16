package transcript

import (
	"regexp"
	"strings"
)

// placeholderNames are labels producers emit when no speaker was identified.
// They must never be stored as if they were a real name.
var placeholderNames = []string{
	"unknown",
	"n/a",
	"na",
	"unidentified",
	"anonymous",
	"unnamed",
	"not provided",
}

var parentheticalRe = regexp.MustCompile(`\(([^)]*)\)`)

// ClassifyRole maps an arbitrary producer role label to a SpeakerRole. It
// never fails: labels that match nothing default to RoleUser so every turn
// gets a role, at the cost of possibly attributing ambiguous system output
// to the caller.
func ClassifyRole(label string) SpeakerRole {
	s := strings.ToUpper(strings.TrimSpace(label))
	switch {
	case strings.Contains(s, "AGENT"):
		return RoleAgent
	case strings.Contains(s, "USER"), strings.Contains(s, "CUSTOMER"), strings.Contains(s, "CALLER"):
		return RoleUser
	case strings.Contains(s, "SYSTEM"), strings.Contains(s, "IVR"), strings.Contains(s, "HOLD"):
		return RoleSystem
	default:
		return RoleUser
	}
}

// ExtractName derives a genuine human display name from a free-text profile
// string. It returns "" rather than ever letting a placeholder or a
// role-only label through. System audio is never given a personal name.
func ExtractName(profile string, role SpeakerRole) string {
	profile = strings.TrimSpace(profile)
	if profile == "" || role == RoleSystem {
		return ""
	}
	if isPlaceholder(profile) {
		return ""
	}

	// "Agent (Riya)" style labels carry the name in the parenthetical.
	if m := parentheticalRe.FindStringSubmatch(profile); m != nil {
		inner := strings.TrimSpace(m[1])
		if inner == "" || isPlaceholder(inner) {
			return ""
		}
		return inner
	}

	// A bare string with no role vocabulary in it is taken as a name;
	// anything else ("AGENT", "user 2", ...) is a label, not a person.
	lower := strings.ToLower(profile)
	if strings.Contains(lower, "agent") || strings.Contains(lower, "user") || strings.Contains(lower, "system") {
		return ""
	}
	return profile
}

func isPlaceholder(s string) bool {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, p := range placeholderNames {
		if norm == p || strings.Contains(norm, p) {
			return true
		}
	}
	return false
}
