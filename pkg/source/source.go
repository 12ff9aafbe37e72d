// Package source implements the append-only source registry that every
// later compiler stage (lexer, parser, diagnostics) references by index
// rather than by pointer or path, so the whole front end can be handed
// around as plain values.
package source

import (
	"fmt"
	"os"
	"time"

	"github.com/rivo/uniseg"
	"golang.org/x/crypto/sha3"
)

// Source is one loaded compilation unit: a path (for diagnostics, not
// necessarily a real filesystem path) and its full UTF-8 content.
type Source struct {
	loadTimestampMS int64
	path            string
	content         string

	digest    [32]byte
	digestSet bool
}

func newSource(path, content string) *Source {
	if path == "" {
		panic("source: path must not be empty")
	}

	return &Source{
		loadTimestampMS: time.Now().UnixMilli(),
		path:            path,
		content:         content,
	}
}

// Path returns the source's display path.
func (s *Source) Path() string { return s.path }

// Content returns the source's full text.
func (s *Source) Content() string { return s.content }

// LoadTimestampMS returns the Unix millisecond timestamp at which this
// source was registered.
func (s *Source) LoadTimestampMS() int64 { return s.loadTimestampMS }

// Digest returns the SHA3-256 digest of the source's content, computing
// it on first use and caching the result. It gives downstream tooling a
// stable, content-addressed identifier independent of load order.
func (s *Source) Digest() [32]byte {
	if !s.digestSet {
		s.digest = sha3.Sum256([]byte(s.content))
		s.digestSet = true
	}

	return s.digest
}

func (s *Source) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s.path)), nil
}

// Context is the append-only owner of every Source loaded during a
// compilation. References into it (Ref) are stable for its lifetime:
// sources are never removed or reordered.
type Context struct {
	sources []*Source
}

// NewContext creates an empty source context.
func NewContext() *Context {
	return &Context{}
}

// AddFromString registers new in-memory source text under a display path
// and returns a Ref to it.
func (c *Context) AddFromString(path, content string) Ref {
	c.sources = append(c.sources, newSource(path, content))
	return Ref{ctx: c, index: len(c.sources) - 1}
}

// LoadFromFile reads a file from disk as UTF-8 and registers it.
func (c *Context) LoadFromFile(path string) (Ref, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Ref{}, fmt.Errorf("source: failed to load %q: %w", path, err)
	}

	return c.AddFromString(path, string(raw)), nil
}

// Len reports how many sources have been registered.
func (c *Context) Len() int { return len(c.sources) }

// Ref is a lightweight, comparable handle to a Source owned by a Context.
// Two Refs are equal iff they point at the same index within the same
// Context.
type Ref struct {
	ctx   *Context
	index int
}

// Source dereferences the Ref.
func (r Ref) Source() *Source { return r.ctx.sources[r.index] }

// Path is a convenience accessor equivalent to r.Source().Path().
func (r Ref) Path() string { return r.Source().Path() }

// Equal reports whether two Refs name the same source.
func (r Ref) Equal(other Ref) bool {
	return r.ctx == other.ctx && r.index == other.index
}

// Less orders Refs by registration order, matching insertion order in the
// owning Context.
func (r Ref) Less(other Ref) bool {
	return r.index < other.index
}

func (r Ref) String() string { return r.Path() }

func (r Ref) MarshalJSON() ([]byte, error) {
	return r.Source().MarshalJSON()
}

// Start returns the location of the very first grapheme of the source.
func (r Ref) Start() Location {
	return Location{ref: r, offset: 0, line: 1, column: 1}
}

// Location is a single cursor position within a Source: a byte offset
// plus the 1-based line/column implied by walking graphemes from the
// start of the source. Locations are only ever advanced by
// NextLocation/ReadNextGrapheme so line/column stay in sync with
// offset.
type Location struct {
	ref    Ref
	offset int
	line   int
	column int
}

// Ref returns the source this location belongs to.
func (l Location) Ref() Ref { return l.ref }

// Offset returns the byte offset into the source's content.
func (l Location) Offset() int { return l.offset }

// Line returns the 1-based line number.
func (l Location) Line() int { return l.line }

// Column returns the 1-based column number, counted in grapheme
// clusters, not bytes or runes.
func (l Location) Column() int { return l.column }

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d+%d", l.ref.Path(), l.line, l.column, l.offset)
}

// Less orders locations first by source, then by offset.
func (l Location) Less(other Location) bool {
	if !l.ref.Equal(other.ref) {
		return l.ref.Less(other.ref)
	}
	return l.offset < other.offset
}

// ErrOffsetOutOfBounds is returned when a location's offset (or a range's
// end) is past the end of its source's content. An offset exactly at the
// end yields ErrNoMoreGraphemes from PeekNextGrapheme instead.
type ErrOffsetOutOfBounds struct{ Offset int }

func (e *ErrOffsetOutOfBounds) Error() string {
	return fmt.Sprintf("source: offset %d is out of bounds", e.Offset)
}

// ErrNotAtGraphemeBoundary is returned by PeekNextGrapheme when no
// grapheme cluster can be read at a location's offset. PeekNextGrapheme
// segments from the offset onward only, so an offset inside a
// multi-code-point cluster is not detected and yields the cluster's tail.
type ErrNotAtGraphemeBoundary struct{ Offset int }

func (e *ErrNotAtGraphemeBoundary) Error() string {
	return fmt.Sprintf("source: offset %d is not at a grapheme cluster boundary", e.Offset)
}

// ErrNoMoreGraphemes is returned by PeekNextGrapheme/ReadNextGrapheme when
// called at the end of the source.
var ErrNoMoreGraphemes = fmt.Errorf("source: no more graphemes")

// PeekNextGrapheme returns the next extended grapheme cluster starting at
// this location without consuming it.
func (l Location) PeekNextGrapheme() (string, error) {
	content := l.ref.Source().content

	if l.offset > len(content) {
		return "", &ErrOffsetOutOfBounds{Offset: l.offset}
	}

	if l.offset == len(content) {
		return "", ErrNoMoreGraphemes
	}

	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(content[l.offset:], -1)

	if cluster == "" {
		return "", &ErrNotAtGraphemeBoundary{Offset: l.offset}
	}

	return cluster, nil
}

// NextLocation returns the location immediately after the next grapheme
// cluster, without mutating l.
func (l Location) NextLocation() (Location, error) {
	grapheme, err := l.PeekNextGrapheme()
	if err != nil {
		return Location{}, err
	}

	next := Location{
		ref:    l.ref,
		offset: l.offset + len(grapheme),
		line:   l.line,
		column: l.column,
	}

	if grapheme == "\n" {
		next.line++
		next.column = 1
	} else {
		next.column++
	}

	return next, nil
}

// ReadNextGrapheme consumes and returns the next grapheme cluster,
// advancing the receiver in place.
func (l *Location) ReadNextGrapheme() (string, error) {
	grapheme, err := l.PeekNextGrapheme()
	if err != nil {
		return "", err
	}

	next, err := l.NextLocation()
	if err != nil {
		return "", err
	}

	*l = next

	return grapheme, nil
}

// Range is a half-open span of source text: [first, first+byteLength).
type Range struct {
	First      Location
	ByteLength int
}

// NewRange constructs a Range directly from a starting location and byte
// length.
func NewRange(first Location, byteLength int) Range {
	return Range{First: first, ByteLength: byteLength}
}

// NewRangeFromLocations builds a Range spanning [first, exclusiveEnd).
func NewRangeFromLocations(first, exclusiveEnd Location) Range {
	return Range{First: first, ByteLength: exclusiveEnd.offset - first.offset}
}

// Content returns the exact substring this range covers.
func (r Range) Content() (string, error) {
	content := r.First.ref.Source().content
	end := r.First.offset + r.ByteLength

	if end > len(content) {
		return "", &ErrOffsetOutOfBounds{Offset: end}
	}

	return content[r.First.offset:end], nil
}

// ExclusiveEnd replays grapheme iteration from First to find the location
// immediately after this range.
func (r Range) ExclusiveEnd() (Location, error) {
	cur := r.First
	remaining := r.ByteLength

	for remaining > 0 {
		grapheme, err := cur.ReadNextGrapheme()
		if err != nil {
			return Location{}, err
		}
		remaining -= len(grapheme)
	}

	return cur, nil
}

// Less orders ranges first by start location, then by byte length.
func (r Range) Less(other Range) bool {
	if !r.First.Less(other.First) && !other.First.Less(r.First) {
		return r.ByteLength < other.ByteLength
	}
	return r.First.Less(other.First)
}

func (r Range) String() string {
	return fmt.Sprintf("%s+%d", r.First.String(), r.ByteLength)
}
