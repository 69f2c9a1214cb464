// Package render maps prompt parts to terminal styles with lipgloss.
package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/muesli/termenv"

	"github.com/xvierd/promptline/internal/config"
	"github.com/xvierd/promptline/internal/domain"
)

// Profile picks the color profile for a color mode. The prompt is usually
// captured by the shell through a pipe, so stdout is never a terminal; "auto"
// looks at the terminal attached to fd (normally stderr) instead.
func Profile(mode string, fd uintptr) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAuto:
		if !term.IsTerminal(fd) {
			return termenv.Ascii
		}
	}
	return termenv.ANSI256
}

// Renderer turns domain values into styled strings.
type Renderer struct {
	root      lipgloss.Style
	dimmed    lipgloss.Style
	bold      lipgloss.Style
	host      lipgloss.Style
	sshHost   lipgloss.Style
	writable  lipgloss.Style
	readonly  lipgloss.Style
	repoOne   lipgloss.Style
	repoMulti lipgloss.Style
}

// New creates a renderer for output written to w.
func New(w io.Writer, profile termenv.Profile, theme *config.ThemeConfig) *Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)

	repo := r.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorRepo))
	return &Renderer{
		root:      r.NewStyle(),
		dimmed:    r.NewStyle().Faint(true).Foreground(lipgloss.Color(theme.ColorDim)),
		bold:      r.NewStyle().Bold(true),
		host:      r.NewStyle().Italic(true),
		sshHost:   r.NewStyle().Bold(true).Italic(true).Foreground(lipgloss.Color(theme.ColorSSHHost)),
		writable:  r.NewStyle().Foreground(lipgloss.Color(theme.ColorWritable)),
		readonly:  r.NewStyle().Foreground(lipgloss.Color(theme.ColorReadonly)),
		repoOne:   repo,
		repoMulti: repo.Reverse(true),
	}
}

func paint(s lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	return s.Render(text)
}

// Path renders each segment with the style of its emphasis.
func (r *Renderer) Path(segments domain.PathSegments) string {
	var b strings.Builder
	for _, seg := range segments {
		switch seg.Emphasis {
		case domain.EmphasisDimmed:
			b.WriteString(paint(r.dimmed, seg.Text))
		case domain.EmphasisBold:
			b.WriteString(paint(r.bold, seg.Text))
		default:
			b.WriteString(paint(r.root, seg.Text))
		}
	}
	return b.String()
}

// Hostname renders the hostname, highlighted on remote sessions.
func (r *Renderer) Hostname(name string, ssh bool) string {
	if ssh {
		return paint(r.sshHost, name)
	}
	return paint(r.host, name)
}

// PromptChar colors the symbol by write access; unknown access stays plain.
func (r *Renderer) PromptChar(c domain.PromptChar) string {
	switch c.Access {
	case domain.AccessWritable:
		return paint(r.writable, c.Symbol)
	case domain.AccessReadonly:
		return paint(r.readonly, c.Symbol)
	default:
		return c.Symbol
	}
}

// RepoState joins the tags with spaces. Two or more operations in flight get
// the inverted style.
func (r *Renderer) RepoState(s domain.RepoState) string {
	switch s.Severity() {
	case domain.SeverityNone:
		return ""
	case domain.SeveritySingle:
		return paint(r.repoOne, s.String())
	default:
		return paint(r.repoMulti, s.String())
	}
}
