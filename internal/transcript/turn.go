// Package transcript converts heterogeneous call-transcript producer output
// into one canonical document describing who spoke what, when.
package transcript

import (
	"time"
)

// SpeakerRole identifies who produced a turn.
type SpeakerRole string

const (
	RoleAgent  SpeakerRole = "agent"  // company representative
	RoleUser   SpeakerRole = "user"   // customer / caller
	RoleSystem SpeakerRole = "system" // IVR, hold audio, non-human sound
)

// Display returns the human-readable label for the role, used wherever a
// turn has no known speaker name.
func (r SpeakerRole) Display() string {
	switch r {
	case RoleAgent:
		return "Agent"
	case RoleSystem:
		return "System"
	default:
		return "User"
	}
}

// Profile refines a role into interactive (human) versus non-interactive
// (ambient/system) audio. It is always derived from the role, never stored
// on its own.
type Profile string

const (
	ProfileHumanAgent  Profile = "human_agent"
	ProfileHumanUser   Profile = "human_user"
	ProfileSystemAudio Profile = "system_audio"
)

// Interactive reports whether the profile represents genuine two-way human
// conversation. This is the single predicate pre-call detection and the
// scoring filter are built on.
func (p Profile) Interactive() bool {
	return p == ProfileHumanAgent || p == ProfileHumanUser
}

// Profile maps a role to its extended profile. The mapping is total: every
// role has exactly one profile.
func (r SpeakerRole) Profile() Profile {
	switch r {
	case RoleAgent:
		return ProfileHumanAgent
	case RoleSystem:
		return ProfileSystemAudio
	default:
		return ProfileHumanUser
	}
}

// Turn is one contiguous utterance by one speaker.
type Turn struct {
	Role SpeakerRole `json:"role"`

	// SpeakerName holds a genuine human name when one is known. Absence is
	// represented by the empty string, never by a placeholder such as
	// "Unknown" or "N/A".
	SpeakerName string `json:"speakerName,omitempty"`

	// Text is the verbatim transcription, fillers and false starts included.
	// For system turns this may be a bracketed description like
	// "[Call ringing]" rather than spoken words.
	Text string `json:"text"`

	StartS float64 `json:"startS"`
	EndS   float64 `json:"endS"`
}

// StartMs returns the start time in whole milliseconds.
func (t Turn) StartMs() int64 { return int64(t.StartS * 1000) }

// EndMs returns the end time in whole milliseconds.
func (t Turn) EndMs() int64 { return int64(t.EndS * 1000) }

// Profile returns the derived profile of the turn's role.
func (t Turn) Profile() Profile { return t.Role.Profile() }

// BaseRole returns the underlying role; profiles never exist apart from it.
func (t Turn) BaseRole() SpeakerRole { return t.Role }

// Metadata describes the document as a whole.
type Metadata struct {
	DurationS  float64   `json:"durationS,omitempty"`
	Language   string    `json:"language,omitempty"`
	AgentName  string    `json:"agentName,omitempty"`
	UserName   string    `json:"userName,omitempty"`
	SampleRate int       `json:"sampleRate,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`

	// Source tags which producer created the document, e.g. "whisper-asr",
	// "manual-upload", "live-conversation", or "unknown".
	Source string `json:"source"`
}

// Doc is the canonical transcript document every downstream consumer reads.
// It is an immutable snapshot: merge and filter operations return new docs
// and never mutate the source in place.
type Doc struct {
	ID       string   `json:"id,omitempty"`
	Turns    []Turn   `json:"turns"`
	Metadata Metadata `json:"metadata"`

	// CallStartMs is the absolute start of the first interactive turn, set
	// by pre-call detection. Nil when the document contains no interactive
	// turn at all.
	CallStartMs *int64 `json:"callStartMs,omitempty"`

	// PreCallDurationMs is the elapsed non-interactive preamble (ringing,
	// hold, IVR) before the conversation proper.
	PreCallDurationMs int64 `json:"preCallDurationMs"`
}

// DurationS returns the document duration: the metadata value when present,
// otherwise the maximum turn end time.
func (d Doc) DurationS() float64 {
	if d.Metadata.DurationS > 0 {
		return d.Metadata.DurationS
	}
	return maxEndS(d.Turns)
}

func maxEndS(turns []Turn) float64 {
	var max float64
	for _, t := range turns {
		if t.EndS > max {
			max = t.EndS
		}
	}
	return max
}
