package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xvierd/promptline/internal/domain"
	"github.com/xvierd/promptline/internal/ports"
)

// CLI implements ports.GitBackend by running the git binary.
type CLI struct {
	binary string
}

// Ensure CLI implements ports.GitBackend.
var _ ports.GitBackend = (*CLI)(nil)

// NewCLI creates a backend that runs binary, "git" when empty.
func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = "git"
	}
	return &CLI{binary: binary}
}

// run executes git in workingDir and returns its trimmed stdout.
func (c *CLI) run(ctx context.Context, workingDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = workingDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return "", &domain.SubprocessError{Args: append([]string{c.binary}, args...), Err: err}
	}
	if !utf8.Valid(out) {
		return "", &domain.SubprocessError{Args: append([]string{c.binary}, args...), Err: domain.ErrNonUTF8Output}
	}
	return strings.TrimSpace(string(out)), nil
}

// GitDir runs `git rev-parse --git-dir`. Any failure means "not a repository".
func (c *CLI) GitDir(ctx context.Context, workingDir string) (string, error) {
	dir, err := c.run(ctx, workingDir, "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNotRepository, err)
	}
	// rev-parse prints ".git" relative to the directory it ran in
	if !filepath.IsAbs(dir) && workingDir != "" {
		dir = filepath.Join(workingDir, dir)
	}
	return dir, nil
}

// Head runs `git rev-parse --abbrev-ref HEAD` and `git log -1 --format=%s`.
func (c *CLI) Head(ctx context.Context, workingDir string) (*ports.HeadInfo, error) {
	ref, err := c.run(ctx, workingDir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return nil, err
	}
	subject, err := c.run(ctx, workingDir, "log", "-1", "--format=%s")
	if err != nil {
		return nil, err
	}
	return &ports.HeadInfo{Ref: ref, Subject: subject}, nil
}
