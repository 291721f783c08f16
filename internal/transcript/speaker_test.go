package transcript

import (
	"strings"
	"testing"
)

func TestClassifyRole(t *testing.T) {
	cases := []struct {
		label string
		want  SpeakerRole
	}{
		{"AGENT", RoleAgent},
		{"agent", RoleAgent},
		{"  Support Agent  ", RoleAgent},
		{"USER", RoleUser},
		{"Customer", RoleUser},
		{"caller-1", RoleUser},
		{"SYSTEM", RoleSystem},
		{"ivr", RoleSystem},
		{"hold_music", RoleSystem},
		{"", RoleUser},
		{"speaker_0", RoleUser},
		{"bot", RoleUser},
	}

	for _, tc := range cases {
		if got := ClassifyRole(tc.label); got != tc.want {
			t.Errorf("ClassifyRole(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestClassifyRole_AgentWins(t *testing.T) {
	// "agent" outranks "user" when a label mentions both.
	if got := ClassifyRole("agent for user"); got != RoleAgent {
		t.Errorf("expected agent, got %q", got)
	}
}

func TestExtractName(t *testing.T) {
	cases := []struct {
		profile string
		role    SpeakerRole
		want    string
	}{
		{"", RoleAgent, ""},
		{"Riya", RoleAgent, "Riya"},
		{"  Riya  ", RoleAgent, "Riya"},
		{"Agent (Riya)", RoleAgent, "Riya"},
		{"Agent (Unknown)", RoleAgent, ""},
		{"Agent ()", RoleAgent, ""},
		{"AGENT", RoleAgent, ""},
		{"user 2", RoleUser, ""},
		{"Unknown", RoleUser, ""},
		{"N/A", RoleUser, ""},
		{"unidentified", RoleUser, ""},
		{"not provided", RoleUser, ""},
		{"Riya", RoleSystem, ""},
		{"System (Riya)", RoleSystem, ""},
	}

	for _, tc := range cases {
		if got := ExtractName(tc.profile, tc.role); got != tc.want {
			t.Errorf("ExtractName(%q, %q) = %q, want %q", tc.profile, tc.role, got, tc.want)
		}
	}
}

func TestExtractName_NeverLeaksPlaceholders(t *testing.T) {
	inputs := []string{
		"Unknown", "UNKNOWN", "unknown", "n/a", "N/A", "na", "NA",
		"Unidentified", "Anonymous", "Unnamed", "Not Provided",
		"Agent (Unknown)", "User (n/a)", "(anonymous)",
	}
	for _, in := range inputs {
		for _, role := range []SpeakerRole{RoleAgent, RoleUser, RoleSystem} {
			got := ExtractName(in, role)
			if got == "" {
				continue
			}
			for _, p := range placeholderNames {
				if strings.Contains(strings.ToLower(got), p) {
					t.Errorf("ExtractName(%q, %q) leaked placeholder: %q", in, role, got)
				}
			}
		}
	}
}

func TestProfileMapping(t *testing.T) {
	cases := []struct {
		role        SpeakerRole
		want        Profile
		interactive bool
	}{
		{RoleAgent, ProfileHumanAgent, true},
		{RoleUser, ProfileHumanUser, true},
		{RoleSystem, ProfileSystemAudio, false},
	}
	for _, tc := range cases {
		if got := tc.role.Profile(); got != tc.want {
			t.Errorf("%q.Profile() = %q, want %q", tc.role, got, tc.want)
		}
		if got := tc.role.Profile().Interactive(); got != tc.interactive {
			t.Errorf("%q interactive = %v, want %v", tc.role, got, tc.interactive)
		}
	}
}
