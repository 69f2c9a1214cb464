package domain

import (
	"fmt"
	"strings"
)

// Emphasis is the styling tier of a rendered path segment.
type Emphasis int

const (
	EmphasisRoot Emphasis = iota
	EmphasisDimmed
	EmphasisBold
)

// String returns the lowercase name of the emphasis.
func (e Emphasis) String() string {
	switch e {
	case EmphasisRoot:
		return "root"
	case EmphasisDimmed:
		return "dimmed"
	case EmphasisBold:
		return "bold"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (e Emphasis) MarshalText() ([]byte, error) {
	if e < EmphasisRoot || e > EmphasisBold {
		return nil, fmt.Errorf("invalid emphasis %d", int(e))
	}
	return []byte(e.String()), nil
}

// PathSegment is one styled piece of a formatted path.
type PathSegment struct {
	Text     string   `json:"text"`
	Emphasis Emphasis `json:"emphasis"`
}

// Anchor is the fixed prefix a formatted path starts from.
type Anchor int

const (
	AnchorRootSlash Anchor = iota
	AnchorHome
)

// Text returns the anchor as rendered before any forced root override.
func (a Anchor) Text() string {
	if a == AnchorHome {
		return "~"
	}
	return ""
}

// PathClassification splits a directory into its anchor and the components
// that follow it.
type PathClassification struct {
	Anchor    Anchor
	Remainder []string
}

// IsEmpty reports whether the directory is the anchor itself.
func (c PathClassification) IsEmpty() bool {
	return len(c.Remainder) == 0
}

// PathSegments is an ordered, root-to-leaf list of segments.
type PathSegments []PathSegment

// Plain joins the segment texts without any styling.
func (s PathSegments) Plain() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Text)
	}
	return b.String()
}
