package transcript

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/grovetools/calltrace/internal/logging"
)

// Options control normalization. The zero value is usable: no default
// names, no merging, producer-derived source tag, package logger.
type Options struct {
	// AgentName and UserName are fallback display names applied to agent
	// and user turns that end up with no resolved speaker name. Never
	// applied to system turns.
	AgentName string
	UserName  string

	// Merge coalesces consecutive turns from the same named speaker.
	Merge bool

	// Source overrides the source tag derived from the input shape.
	Source string

	// Language is the detected language code recorded in the metadata.
	Language string

	// SampleRate is the producer's audio sample rate, when known.
	SampleRate int

	// Logger receives the single warning emitted on unrecognized input.
	// Injected so concurrent callers do not contend on one global logger.
	Logger logrus.FieldLogger

	// Parser handles free-text input. Defaults to the line-oriented
	// HeuristicParser.
	Parser TextParser
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.NewLogger("transcript")
}

func (o Options) parser() TextParser {
	if o.Parser != nil {
		return o.Parser
	}
	return HeuristicParser{}
}

// Normalize converts an arbitrary producer value into a canonical document.
// It never fails: unrecognized input yields an empty document tagged with
// source "unknown" and one logged warning.
func Normalize(v any, opts Options) Doc {
	return NormalizeSource(DetectSource(v), opts)
}

// NormalizeSource converts one classified producer input into a canonical
// document. The match over variants is exhaustive; adding a Source variant
// without a case here is a compile-visible omission, not a silent fallback.
func NormalizeSource(src Source, opts Options) Doc {
	switch in := src.(type) {
	case DocSource:
		doc := in.Doc
		if doc.Metadata.Source == "" {
			doc.Metadata.Source = opts.sourceTag(src)
		}
		if doc.CallStartMs == nil {
			doc = annotatePreCall(doc)
		}
		if opts.Merge {
			doc.Turns = MergeTurns(doc.Turns)
		}
		return doc

	case SegmentListSource:
		return buildDoc(normalizeSegments(in.Segments, opts), opts, opts.sourceTag(src))

	case TurnLogSource:
		return buildDoc(normalizeSegments(in.Records, opts), opts, opts.sourceTag(src))

	case TextSource:
		return buildDoc(opts.parser().ParseText(in.Text), opts, opts.sourceTag(src))

	default:
		var value any
		if unk, ok := in.(unknownSource); ok {
			value = unk.value
		}
		opts.logger().WithField("input", fmt.Sprintf("%T", value)).
			Warn("Unrecognized transcript input shape")
		return Doc{
			Turns:    []Turn{},
			Metadata: Metadata{Source: "unknown", CreatedAt: time.Now().UTC()},
		}
	}
}

func (o Options) sourceTag(src Source) string {
	if o.Source != "" {
		return o.Source
	}
	return src.sourceTag()
}

func normalizeSegments(segments []map[string]any, opts Options) []Turn {
	turns := make([]Turn, 0, len(segments))
	for _, seg := range segments {
		turns = append(turns, normalizeSegment(seg, opts))
	}
	return turns
}

// buildDoc assembles the document and its metadata from normalized turns:
// duration from the latest turn end, display names from the first named
// agent and user turns, then pre-call annotation and the optional merge.
func buildDoc(turns []Turn, opts Options, source string) Doc {
	if turns == nil {
		turns = []Turn{}
	}

	meta := Metadata{
		DurationS:  maxEndS(turns),
		Language:   opts.Language,
		AgentName:  opts.AgentName,
		UserName:   opts.UserName,
		SampleRate: opts.SampleRate,
		CreatedAt:  time.Now().UTC(),
		Source:     source,
	}
	for _, t := range turns {
		if t.SpeakerName == "" {
			continue
		}
		if meta.AgentName == "" && t.Role == RoleAgent {
			meta.AgentName = t.SpeakerName
		}
		if meta.UserName == "" && t.Role == RoleUser {
			meta.UserName = t.SpeakerName
		}
	}

	doc := annotatePreCall(Doc{
		ID:       uuid.NewString(),
		Turns:    turns,
		Metadata: meta,
	})
	if opts.Merge {
		doc.Turns = MergeTurns(doc.Turns)
	}
	return doc
}
