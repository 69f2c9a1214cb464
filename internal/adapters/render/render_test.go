package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/xvierd/promptline/internal/config"
	"github.com/xvierd/promptline/internal/domain"
)

func newRenderer(profile termenv.Profile) *Renderer {
	theme := config.DefaultThemeConfig()
	return New(&bytes.Buffer{}, profile, &theme)
}

var samplePath = domain.PathSegments{
	{Text: "~", Emphasis: domain.EmphasisDimmed},
	{Text: "/", Emphasis: domain.EmphasisDimmed},
	{Text: "p", Emphasis: domain.EmphasisBold},
	{Text: "/", Emphasis: domain.EmphasisDimmed},
	{Text: "src", Emphasis: domain.EmphasisBold},
}

func TestRenderer_Ascii(t *testing.T) {
	r := newRenderer(termenv.Ascii)

	assert.Equal(t, "~/p/src", r.Path(samplePath))
	assert.Equal(t, "devbox", r.Hostname("devbox", true))
	assert.Equal(t, "$", r.PromptChar(domain.NewPromptChar(false, domain.AccessWritable)))
	assert.Equal(t, "MERGE REVERT", r.RepoState(domain.RepoState{domain.RepoOpMerge, domain.RepoOpRevert}))
}

func TestRenderer_PathStyled(t *testing.T) {
	r := newRenderer(termenv.ANSI256)

	got := r.Path(samplePath)

	assert.Contains(t, got, "\x1b[")
	assert.Equal(t, samplePath.Plain(), stripANSI(got))
}

func TestRenderer_PathSkipsEmptyAnchor(t *testing.T) {
	r := newRenderer(termenv.ANSI256)

	got := r.Path(domain.PathSegments{
		{Text: "", Emphasis: domain.EmphasisDimmed},
		{Text: "/", Emphasis: domain.EmphasisDimmed},
		{Text: "etc", Emphasis: domain.EmphasisBold},
	})

	assert.Equal(t, r.dimmed.Render("/")+r.bold.Render("etc"), got)
}

func TestRenderer_RepoState(t *testing.T) {
	r := newRenderer(termenv.ANSI256)

	assert.Equal(t, "", r.RepoState(nil))

	single := r.RepoState(domain.RepoState{domain.RepoOpRebase})
	multi := r.RepoState(domain.RepoState{domain.RepoOpRebaseOrAm, domain.RepoOpMerge})

	assert.Equal(t, "REBASE", stripANSI(single))
	assert.Equal(t, "REBASE/AM MERGE", stripANSI(multi))
	assert.Equal(t, r.repoOne.Render("REBASE"), single)
	assert.Equal(t, r.repoMulti.Render("REBASE/AM MERGE"), multi)
	assert.NotEqual(t, r.repoOne.Render("X"), r.repoMulti.Render("X"))
}

func TestRenderer_PromptChar(t *testing.T) {
	r := newRenderer(termenv.ANSI256)

	unknown := r.PromptChar(domain.NewPromptChar(true, domain.AccessUnknown))
	writable := r.PromptChar(domain.NewPromptChar(false, domain.AccessWritable))
	readonly := r.PromptChar(domain.NewPromptChar(false, domain.AccessReadonly))

	assert.Equal(t, "#", unknown)
	assert.NotEqual(t, writable, readonly)
	assert.Equal(t, "$", stripANSI(writable))
	assert.Equal(t, "$", stripANSI(readonly))
}

func TestProfile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	assert.Equal(t, termenv.ANSI256, Profile(config.ColorAlways, f.Fd()))
	assert.Equal(t, termenv.Ascii, Profile(config.ColorNever, f.Fd()))
	assert.Equal(t, termenv.Ascii, Profile(config.ColorAuto, f.Fd()))
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && (s[i] < 0x40 || s[i] > 0x7e) {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
