package transcript

import (
	"encoding/json"
)

// Source is the closed set of producer input shapes the engine accepts.
// Each producer-facing entry point constructs its own variant; the shape
// sniff over untyped values lives in DetectSource alone, so conversion in
// NormalizeSource is an exhaustive match rather than scattered duck typing.
type Source interface {
	sourceTag() string
}

// DocSource wraps input that is already a canonical document.
type DocSource struct {
	Doc Doc
}

// SegmentListSource wraps the legacy `{segments: [...]}` wrapper emitted by
// the speech-recognition collaborator.
type SegmentListSource struct {
	Segments []map[string]any
}

// TurnLogSource wraps a bare array of segment-like records, as recorded
// turn-by-turn by the live-conversation collaborator.
type TurnLogSource struct {
	Records []map[string]any
}

// TextSource wraps free-form pasted or uploaded plain text.
type TextSource struct {
	Text string
}

type unknownSource struct {
	value any
}

func (DocSource) sourceTag() string         { return "canonical" }
func (SegmentListSource) sourceTag() string { return "whisper-asr" }
func (TurnLogSource) sourceTag() string     { return "live-conversation" }
func (TextSource) sourceTag() string        { return "manual-upload" }
func (unknownSource) sourceTag() string     { return "unknown" }

// DetectSource inspects an arbitrary value and classifies it as one of the
// known producer shapes. First match wins: canonical doc, legacy segments
// wrapper, bare record array, plain text. Anything else is unknown.
func DetectSource(v any) Source {
	switch in := v.(type) {
	case Doc:
		return DocSource{Doc: in}
	case *Doc:
		if in != nil {
			return DocSource{Doc: *in}
		}
	case string:
		return TextSource{Text: in}
	case []byte:
		return TextSource{Text: string(in)}
	case []map[string]any:
		return TurnLogSource{Records: in}
	case []any:
		return TurnLogSource{Records: toRecords(in)}
	case map[string]any:
		if turns, ok := in["turns"]; ok {
			if doc, ok := docFromMap(in, turns); ok {
				return DocSource{Doc: doc}
			}
		}
		if segs, ok := in["segments"].([]any); ok {
			return SegmentListSource{Segments: toRecords(segs)}
		}
		if segs, ok := in["segments"].([]map[string]any); ok {
			return SegmentListSource{Segments: segs}
		}
	}
	return unknownSource{value: v}
}

func toRecords(items []any) []map[string]any {
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if rec, ok := item.(map[string]any); ok {
			records = append(records, rec)
		}
	}
	return records
}

// docFromMap round-trips a decoded-JSON map into a Doc. Producers that hand
// us an untyped canonical document get the same treatment as a typed one.
func docFromMap(m map[string]any, turns any) (Doc, bool) {
	if _, ok := turns.([]any); !ok {
		return Doc{}, false
	}
	data, err := json.Marshal(m)
	if err != nil {
		return Doc{}, false
	}
	var doc Doc
	if err := json.Unmarshal(data, &doc); err != nil {
		return Doc{}, false
	}
	return doc, true
}
