package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/xvierd/promptline/internal/adapters/render"
	"github.com/xvierd/promptline/internal/domain"
	"github.com/xvierd/promptline/internal/gitstate"
	"github.com/xvierd/promptline/internal/pathfmt"
	"github.com/xvierd/promptline/internal/ports"
)

// Unknown replaces any value that could not be read.
const Unknown = "?"

// PromptDeps are the collaborators PromptService composes.
type PromptDeps struct {
	Env         ports.Environment
	Home        ports.HomeResolver
	Host        ports.HostnameReader
	User        ports.UsernameReader
	Git         ports.GitBackend
	FS          ports.ExistenceChecker
	Permissions ports.PermissionChecker
	Formatter   *pathfmt.Formatter
	Renderer    *render.Renderer
	Logger      *slog.Logger
	// Getwd returns the current directory; os.Getwd when nil.
	Getwd func() (string, error)
}

// PromptService builds the three prompt outputs. None of its methods fail:
// every error degrades to a placeholder and is logged at debug level.
type PromptService struct {
	deps PromptDeps
	log  *slog.Logger
}

// NewPromptService creates a new prompt service.
func NewPromptService(deps PromptDeps) *PromptService {
	if deps.Getwd == nil {
		deps.Getwd = os.Getwd
	}
	if deps.Formatter == nil {
		deps.Formatter = pathfmt.New(pathfmt.DefaultOptions())
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &PromptService{deps: deps, log: log}
}

// PathSegments formats the current directory. ok is false when the
// directory can not be resolved, e.g. it was deleted under the shell.
func (s *PromptService) PathSegments() (segments domain.PathSegments, ok bool) {
	wd, err := s.deps.Getwd()
	if err != nil {
		s.log.Debug("current directory unavailable", "error", err)
		return nil, false
	}
	home, _ := s.deps.Home.Home()
	return s.deps.Formatter.Format(wd, home), true
}

// Path renders the current directory, styled or plain, or "?".
func (s *PromptService) Path(styled bool) string {
	segments, ok := s.PathSegments()
	if !ok {
		return Unknown
	}
	if styled {
		return s.deps.Renderer.Path(segments)
	}
	return segments.Plain()
}

// RepoState detects in-progress operations. Outside a repository the state
// is empty and the detector never runs.
func (s *PromptService) RepoState(ctx context.Context) domain.RepoState {
	wd, err := s.deps.Getwd()
	if err != nil {
		s.log.Debug("current directory unavailable", "error", err)
		wd = ""
	}
	gitDir, err := s.deps.Git.GitDir(ctx, wd)
	if err != nil {
		s.log.Debug("no git directory", "error", err)
		return nil
	}
	return gitstate.Detect(gitDir, s.deps.FS)
}

// RenderRepoState styles a detected state; empty when nothing is in flight.
func (s *PromptService) RenderRepoState(state domain.RepoState) string {
	return s.deps.Renderer.RepoState(state)
}

// Title is the window title: $TAB, else "SSH <host>" on remote sessions,
// else the plain path.
func (s *PromptService) Title() string {
	if tab, ok := s.deps.Env.LookupEnv("TAB"); ok {
		return tab
	}
	if s.isSSH() {
		return "SSH " + s.hostname()
	}
	return s.Path(false)
}

// Right is the right-hand prompt: `(<ref>) "<subject>"`, or empty when
// either git query fails.
func (s *PromptService) Right(ctx context.Context) string {
	wd, err := s.deps.Getwd()
	if err != nil {
		s.log.Debug("current directory unavailable", "error", err)
		wd = ""
	}
	head, err := s.deps.Git.Head(ctx, wd)
	if err != nil {
		s.log.Debug("git head unavailable", "error", err)
		return ""
	}
	return fmt.Sprintf("(%s) \"%s\"", head.Ref, head.Subject)
}

// Prompt is the full prompt line:
// "<host> <user>:<path> <state><sep><char> ".
func (s *PromptService) Prompt(ctx context.Context) string {
	host := s.deps.Renderer.Hostname(s.hostname(), s.isSSH())
	user := s.username()
	path := s.Path(true)
	state := s.RenderRepoState(s.RepoState(ctx))

	sep := ""
	if state != "" {
		sep = " "
	}
	return fmt.Sprintf("%s %s:%s %s%s%s ", host, user, path, state, sep, s.deps.Renderer.PromptChar(s.promptChar()))
}

func (s *PromptService) promptChar() domain.PromptChar {
	superuser := s.deps.Permissions.IsSuperuser()

	wd, err := s.deps.Getwd()
	if err != nil {
		return domain.NewPromptChar(superuser, domain.AccessUnknown)
	}
	writable, err := s.deps.Permissions.CanWrite(wd)
	if err != nil {
		s.log.Debug("permission check failed", "dir", wd, "error", err)
		return domain.NewPromptChar(superuser, domain.AccessUnknown)
	}
	if writable {
		return domain.NewPromptChar(superuser, domain.AccessWritable)
	}
	return domain.NewPromptChar(superuser, domain.AccessReadonly)
}

func (s *PromptService) isSSH() bool {
	_, ok := s.deps.Env.LookupEnv("SSH_CONNECTION")
	return ok
}

func (s *PromptService) hostname() string {
	name, err := s.deps.Host.Hostname()
	if err != nil {
		s.log.Debug("hostname unavailable", "error", err)
		return Unknown
	}
	return name
}

func (s *PromptService) username() string {
	name, err := s.deps.User.Username()
	if err != nil {
		s.log.Debug("username unavailable", "error", err)
		return Unknown
	}
	return name
}
