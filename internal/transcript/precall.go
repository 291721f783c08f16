package transcript

// PreCall describes the boundary between non-interactive preamble and the
// human conversation.
type PreCall struct {
	// Index of the first interactive turn; -1 when none exists.
	Index int

	// CallStartMs is that turn's absolute start time. Nil when the whole
	// document is pre-call.
	CallStartMs *int64

	// PreCallDurationMs is the elapsed non-interactive time before the
	// conversation begins.
	PreCallDurationMs int64
}

// DetectPreCall locates the first turn whose profile is interactive. When
// no such turn exists the entire document counts as pre-call and the call
// start stays unset. When the very first turn is already interactive there
// is no pre-call section at all.
func DetectPreCall(doc Doc) PreCall {
	for i, t := range doc.Turns {
		if !t.Profile().Interactive() {
			continue
		}
		var start int64
		pre := PreCall{Index: i, CallStartMs: &start}
		if i > 0 {
			start = t.StartMs()
			pre.PreCallDurationMs = start - doc.Turns[0].StartMs()
		}
		return pre
	}
	return PreCall{
		Index:             -1,
		PreCallDurationMs: int64(doc.DurationS() * 1000),
	}
}

// annotatePreCall returns a copy of the document with the pre-call fields
// populated.
func annotatePreCall(doc Doc) Doc {
	pre := DetectPreCall(doc)
	doc.CallStartMs = pre.CallStartMs
	doc.PreCallDurationMs = pre.PreCallDurationMs
	return doc
}

// FilterForScoring returns a new document containing only interactive
// turns, so ringing, hold music, and IVR menus never influence downstream
// quality scoring. Duration is recalculated from the retained turns and the
// pre-call fields are reset, since the filtered document has no preamble by
// construction.
func FilterForScoring(doc Doc) Doc {
	kept := make([]Turn, 0, len(doc.Turns))
	for _, t := range doc.Turns {
		if t.Profile().Interactive() {
			kept = append(kept, t)
		}
	}

	out := doc
	out.Turns = kept
	out.Metadata.DurationS = maxEndS(kept)
	start := int64(0)
	out.CallStartMs = &start
	out.PreCallDurationMs = 0
	return out
}
