// Package pathfmt abbreviates an absolute directory into styled prompt segments.
package pathfmt

import (
	"strings"
	"unicode/utf8"

	"github.com/xvierd/promptline/internal/domain"
)

const separator = "/"

// Options controls how components are shortened.
type Options struct {
	// AbbreviateIntermediate cuts every name component except the last to
	// its first character.
	AbbreviateIntermediate bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{AbbreviateIntermediate: true}
}

// Formatter turns directories into path segments. The zero value does not
// abbreviate; use New or DefaultOptions for the usual prompt behaviour.
type Formatter struct {
	opts Options
}

// New creates a formatter with the given options.
func New(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Classify picks the anchor for dir and returns the components after it.
// home is ignored when empty.
func Classify(dir, home string) domain.PathClassification {
	parts := components(dir)
	if home != "" {
		if rest, ok := trimPrefix(parts, components(home)); ok {
			return domain.PathClassification{Anchor: domain.AnchorHome, Remainder: rest}
		}
	}
	return domain.PathClassification{Anchor: domain.AnchorRootSlash, Remainder: parts}
}

// Format renders dir relative to home (or the filesystem root) as an ordered
// list of segments. It never fails: any string is split on "/".
func (f *Formatter) Format(dir, home string) domain.PathSegments {
	return f.FormatClassified(Classify(dir, home))
}

// FormatClassified renders an already classified path.
func (f *Formatter) FormatClassified(c domain.PathClassification) domain.PathSegments {
	segments := make(domain.PathSegments, 0, 1+2*len(c.Remainder))

	anchor := c.Anchor.Text()
	if c.IsEmpty() {
		if anchor == "" {
			anchor = separator
		}
		return append(segments, domain.PathSegment{Text: anchor, Emphasis: domain.EmphasisBold})
	}
	segments = append(segments, domain.PathSegment{Text: anchor, Emphasis: domain.EmphasisDimmed})

	last := len(c.Remainder) - 1
	for i, part := range c.Remainder {
		segments = append(segments,
			domain.PathSegment{Text: separator, Emphasis: domain.EmphasisDimmed},
			domain.PathSegment{Text: f.component(part, i == last), Emphasis: domain.EmphasisBold},
		)
	}
	return segments
}

func (f *Formatter) component(name string, isLast bool) string {
	switch name {
	case ".", "..":
		return name
	}
	if isLast || !f.opts.AbbreviateIntermediate {
		return name
	}
	_, size := utf8.DecodeRuneInString(name)
	return name[:size]
}

// components splits a path on "/" and drops empty parts, so repeated and
// trailing separators are ignored. "." and ".." are kept verbatim.
func components(path string) []string {
	raw := strings.Split(path, separator)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// trimPrefix removes prefix from parts when every component matches.
func trimPrefix(parts, prefix []string) ([]string, bool) {
	if len(prefix) > len(parts) {
		return nil, false
	}
	for i := range prefix {
		if parts[i] != prefix[i] {
			return nil, false
		}
	}
	return parts[len(prefix):], true
}
