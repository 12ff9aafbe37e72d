// Package diag implements Forge's diagnostic model: severities, messages
// anchored to a source location or range, and a sorted sink that
// lexer/parser stages append to as they go.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sophie-lund/forge/pkg/source"
)

// Severity ranks how serious a Message is. Lower values are less severe;
// the zero value is the least severe severity, not "no severity".
type Severity int

const (
	SeverityNote Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatalError
	SeverityInternalError
)

func (s Severity) String() string {
	switch s {
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatalError:
		return "fatal error"
	case SeverityInternalError:
		return "internal error"
	default:
		return "unknown severity"
	}
}

// Code is a small closed vocabulary of stable message identifiers so
// callers can match on a code instead of parsing message text.
type Code string

const (
	CodeLexUnexpectedChar  Code = "forge.lex.unexpected-char"
	CodeLexBadNumber       Code = "forge.lex.bad-number"
	CodeParseUnexpectedEOF Code = "forge.parse.unexpected-eof"
	CodeParseUnexpectedTok Code = "forge.parse.unexpected-token"
	CodeParseMissingToken  Code = "forge.parse.missing-token"
	CodeParseBadNumber     Code = "forge.parse.bad-number"
)

// Origin is where a Message points: either a single location or a range.
// Exactly one of the two accessors is meaningful at a time, mirroring the
// untagged Source|Range union the original implementation uses.
type Origin struct {
	location  source.Location
	rang      source.Range
	isRange   bool
	isAnyKind bool
}

// OriginFromLocation anchors a message at a single point.
func OriginFromLocation(l source.Location) Origin {
	return Origin{location: l, isAnyKind: true}
}

// OriginFromRange anchors a message at a span.
func OriginFromRange(r source.Range) Origin {
	return Origin{rang: r, isRange: true, isAnyKind: true}
}

// Source returns the source this origin belongs to.
func (o Origin) Source() source.Ref {
	if o.isRange {
		return o.rang.First.Ref()
	}
	return o.location.Ref()
}

func (o Origin) String() string {
	if o.isRange {
		return o.rang.String()
	}
	return o.location.String()
}

func (o Origin) less(other Origin) bool {
	if !o.Source().Equal(other.Source()) {
		return o.Source().Less(other.Source())
	}

	switch {
	case !o.isRange && other.isRange:
		return true
	case o.isRange && !other.isRange:
		return false
	case !o.isRange && !other.isRange:
		return o.location.Less(other.location)
	default:
		return o.rang.Less(other.rang)
	}
}

// Message is a single diagnostic, optionally carrying nested Notes that
// elaborate on it (e.g. a "did you mean" suggestion).
type Message struct {
	Origin   Origin
	Severity Severity
	Code     Code
	Text     string
	Children []*Message
}

// New constructs a Message. It panics if text is empty, matching the
// original implementation's assertion that every message carries
// explanatory text.
func New(origin Origin, severity Severity, code Code, text string) *Message {
	if text == "" {
		panic("diag: message text must not be empty")
	}

	return &Message{Origin: origin, Severity: severity, Code: code, Text: text}
}

// WithChild appends a child message and returns the receiver for
// chaining.
func (m *Message) WithChild(child *Message) *Message {
	m.Children = append(m.Children, child)
	return m
}

// WithSuggestion attaches a Note child suggesting the closest match to
// got out of candidates. A candidate is close enough when either string
// fuzzy-matches the other (case-insensitively); matches are ranked by
// Levenshtein distance. It is a no-op if no candidate is close enough.
func (m *Message) WithSuggestion(got string, candidates []string) *Message {
	var ranks fuzzy.Ranks
	for i, c := range candidates {
		if fuzzy.MatchFold(got, c) || fuzzy.MatchFold(c, got) {
			ranks = append(ranks, fuzzy.Rank{Source: got, Target: c, Distance: fuzzy.LevenshteinDistance(got, c), OriginalIndex: i})
		}
	}
	if len(ranks) == 0 {
		return m
	}

	sort.Slice(ranks, func(i, j int) bool { return ranks[i].Distance < ranks[j].Distance })

	best := ranks[0].Target
	return m.WithChild(New(m.Origin, SeverityNote, "", fmt.Sprintf("did you mean %q?", best)))
}

func (m *Message) less(other *Message) bool {
	if m.Severity != other.Severity {
		return m.Severity < other.Severity
	}
	return m.Origin.less(other.Origin)
}

func (m *Message) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%d] %s: %s", m.Severity, m.Severity, m.Text)

	for _, child := range m.Children {
		for _, line := range strings.Split(child.String(), "\n") {
			b.WriteString("\n  ")
			b.WriteString(line)
		}
	}

	return b.String()
}

// Sink is a collection of Messages, stored in insertion order and
// presented sorted by severity, matching the original implementation's
// MessageBuffer. Truncate can discard messages back to a checkpoint.
type Sink struct {
	messages []*Message
}

// NewSink constructs an empty Sink.
func NewSink() *Sink { return &Sink{} }

// Push appends m in insertion order; Messages applies the
// severity-then-origin ordering.
func (s *Sink) Push(m *Message) {
	s.messages = append(s.messages, m)
}

// Len returns the number of messages currently in the sink, used by
// parser checkpoints to roll back diagnostics emitted during an
// abandoned parse attempt.
func (s *Sink) Len() int { return len(s.messages) }

// Truncate discards every message pushed after the first n, restoring
// the sink to a previous checkpoint taken via Len.
func (s *Sink) Truncate(n int) {
	s.messages = s.messages[:n]
}

// Messages returns the sink's contents sorted by severity then origin.
// Push order (insertion order) is preserved as a tiebreaker, so the sort
// is stable and cheap to recompute on demand.
func (s *Sink) Messages() []*Message {
	sorted := make([]*Message, len(s.messages))
	copy(sorted, s.messages)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].less(sorted[j]) })
	return sorted
}

// HasSeverityAtLeast reports whether any pushed message is at least as
// severe as min.
func (s *Sink) HasSeverityAtLeast(min Severity) bool {
	for _, m := range s.messages {
		if m.Severity >= min {
			return true
		}
	}
	return false
}

func (s *Sink) String() string {
	lines := make([]string, len(s.messages))
	for i, m := range s.messages {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}
