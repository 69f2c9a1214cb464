// Package git provides the git collaborators of the prompt: locating the
// control directory and reading HEAD, either through go-git or the git binary.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/xvierd/promptline/internal/domain"
	"github.com/xvierd/promptline/internal/ports"
)

// Detector implements ports.GitBackend using go-git, without spawning git.
type Detector struct{}

// NewDetector creates a new go-git backed detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Ensure Detector implements ports.GitBackend.
var _ ports.GitBackend = (*Detector)(nil)

// open finds the repository enclosing workingDir, walking up like git does.
func open(workingDir string) (*git.Repository, error) {
	if workingDir == "" {
		var err error
		workingDir, err = os.Getwd()
		if err != nil {
			return nil, &domain.IoError{Op: "getwd", Path: ".", Err: err}
		}
	}

	repo, err := git.PlainOpenWithOptions(workingDir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%s: %w", workingDir, domain.ErrNotRepository)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return repo, nil
}

// GitDir returns the control directory go-git opened for workingDir.
func (d *Detector) GitDir(ctx context.Context, workingDir string) (string, error) {
	repo, err := open(workingDir)
	if err != nil {
		return "", err
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", fmt.Errorf("unexpected storage %T: %w", repo.Storer, domain.ErrNotRepository)
	}
	return storage.Filesystem().Root(), nil
}

// Head returns the short ref name and the subject of the HEAD commit.
func (d *Detector) Head(ctx context.Context, workingDir string) (*ports.HeadInfo, error) {
	repo, err := open(workingDir)
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	// Match `git rev-parse --abbrev-ref HEAD`, which prints HEAD when detached.
	ref := "HEAD"
	if head.Name().IsBranch() {
		ref = head.Name().Short()
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}

	return &ports.HeadInfo{
		Ref:     ref,
		Subject: subject(commit.Message),
	}, nil
}

// subject returns the first paragraph of a commit message folded onto one
// line, the way `git log --format=%s` does.
func subject(message string) string {
	para, _, _ := strings.Cut(strings.TrimLeft(message, "\n"), "\n\n")
	return strings.Join(strings.Fields(para), " ")
}
