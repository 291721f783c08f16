package transcript

// MergeTurns coalesces consecutive turns spoken by the same named speaker
// into one, joining text with a single space and extending the end time.
// A different name under the same role never merges. The operation is
// idempotent: a second pass finds nothing left to merge.
func MergeTurns(turns []Turn) []Turn {
	if len(turns) == 0 {
		return []Turn{}
	}

	merged := make([]Turn, 0, len(turns))
	merged = append(merged, turns[0])

	for _, t := range turns[1:] {
		last := &merged[len(merged)-1]
		if t.Role == last.Role && t.SpeakerName == last.SpeakerName {
			if t.Text != "" {
				if last.Text != "" {
					last.Text += " "
				}
				last.Text += t.Text
			}
			if t.EndS > last.EndS {
				last.EndS = t.EndS
			}
			continue
		}
		merged = append(merged, t)
	}

	return merged
}
