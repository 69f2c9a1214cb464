package pathfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/promptline/internal/domain"
)

func seg(text string, e domain.Emphasis) domain.PathSegment {
	return domain.PathSegment{Text: text, Emphasis: e}
}

func TestFormat_UnderHome(t *testing.T) {
	f := New(DefaultOptions())

	got := f.Format("/home/alice/proj/src", "/home/alice")

	want := domain.PathSegments{
		seg("~", domain.EmphasisDimmed),
		seg("/", domain.EmphasisDimmed),
		seg("p", domain.EmphasisBold),
		seg("/", domain.EmphasisDimmed),
		seg("src", domain.EmphasisBold),
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "~/p/src", got.Plain())
}

func TestFormat_AtHome(t *testing.T) {
	f := New(DefaultOptions())

	got := f.Format("/home/alice", "/home/alice")

	assert.Equal(t, domain.PathSegments{seg("~", domain.EmphasisBold)}, got)
}

func TestFormat_Root(t *testing.T) {
	f := New(DefaultOptions())

	tests := []struct {
		name string
		home string
	}{
		{"no home", ""},
		{"home elsewhere", "/home/alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Format("/", tt.home)
			assert.Equal(t, domain.PathSegments{seg("/", domain.EmphasisBold)}, got)
		})
	}
}

func TestFormat_OutsideHome(t *testing.T) {
	f := New(DefaultOptions())

	got := f.Format("/usr/local/bin", "/home/alice")

	want := domain.PathSegments{
		seg("", domain.EmphasisDimmed),
		seg("/", domain.EmphasisDimmed),
		seg("u", domain.EmphasisBold),
		seg("/", domain.EmphasisDimmed),
		seg("l", domain.EmphasisBold),
		seg("/", domain.EmphasisDimmed),
		seg("bin", domain.EmphasisBold),
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "/u/l/bin", got.Plain())
}

func TestFormat_SiblingOfHomeIsNotUnderHome(t *testing.T) {
	f := New(DefaultOptions())

	got := f.Format("/home/alice2/x", "/home/alice")

	assert.Equal(t, "/h/a/x", got.Plain())
}

func TestFormat_Plain(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		home string
		opts Options
		want string
	}{
		{"single component", "/etc", "", DefaultOptions(), "/etc"},
		{"trailing slash", "/home/alice/proj/", "/home/alice", DefaultOptions(), "~/proj"},
		{"repeated slashes", "//var//log", "", DefaultOptions(), "/v/log"},
		{"dot components kept", "/srv/./a/../b", "", DefaultOptions(), "/s/./a/../b"},
		{"dot dot last", "/srv/..", "", DefaultOptions(), "/s/.."},
		{"multibyte first rune", "/home/alice/été/x", "/home/alice", DefaultOptions(), "~/é/x"},
		{"hidden intermediate", "/home/alice/.config/nvim", "/home/alice", DefaultOptions(), "~/./nvim"},
		{"abbreviation off", "/home/alice/proj/src", "/home/alice", Options{}, "~/proj/src"},
		{"root home", "/usr/bin", "/", DefaultOptions(), "~/u/bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.opts).Format(tt.dir, tt.home)
			assert.Equal(t, tt.want, got.Plain())
		})
	}
}

func TestFormat_SegmentCounts(t *testing.T) {
	f := New(DefaultOptions())

	got := f.Format("/a/bb/ccc/dddd", "")

	require.Len(t, got, 1+2*4)
	var separators, parts int
	for i, s := range got[1:] {
		if i%2 == 0 {
			assert.Equal(t, "/", s.Text)
			assert.Equal(t, domain.EmphasisDimmed, s.Emphasis)
			separators++
		} else {
			assert.Equal(t, domain.EmphasisBold, s.Emphasis)
			parts++
		}
	}
	assert.Equal(t, 4, separators)
	assert.Equal(t, 4, parts)
	assert.Equal(t, "/a/b/c/dddd", got.Plain())
}

func TestFormat_Idempotent(t *testing.T) {
	f := New(DefaultOptions())

	first := f.Format("/home/alice/go/src/promptline", "/home/alice")
	second := f.Format("/home/alice/go/src/promptline", "/home/alice")

	assert.Equal(t, first, second)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		home string
		want domain.PathClassification
	}{
		{
			name: "home itself",
			dir:  "/home/alice",
			home: "/home/alice",
			want: domain.PathClassification{Anchor: domain.AnchorHome, Remainder: []string{}},
		},
		{
			name: "below home",
			dir:  "/home/alice/a/b",
			home: "/home/alice/",
			want: domain.PathClassification{Anchor: domain.AnchorHome, Remainder: []string{"a", "b"}},
		},
		{
			name: "no home",
			dir:  "/a/b",
			want: domain.PathClassification{Anchor: domain.AnchorRootSlash, Remainder: []string{"a", "b"}},
		},
		{
			name: "root",
			dir:  "/",
			home: "/home/alice",
			want: domain.PathClassification{Anchor: domain.AnchorRootSlash, Remainder: []string{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.dir, tt.home))
		})
	}
}
