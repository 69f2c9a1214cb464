package ports

import (
	"context"
)

// HeadInfo holds what the right-hand prompt shows about HEAD.
type HeadInfo struct {
	// Ref is the abbreviated ref name, "HEAD" when detached.
	Ref string
	// Subject is the first line of the last commit message.
	Subject string
}

// GitDirResolver locates the control directory of the repository that
// contains the working directory.
// This is a driven port (implemented by adapters).
type GitDirResolver interface {
	// GitDir returns the control directory for workingDir. It returns an
	// error wrapping domain.ErrNotRepository outside a repository.
	GitDir(ctx context.Context, workingDir string) (string, error)
}

// HeadReader reads the current ref and last commit subject.
type HeadReader interface {
	Head(ctx context.Context, workingDir string) (*HeadInfo, error)
}

// GitBackend bundles both git collaborators behind one implementation.
type GitBackend interface {
	GitDirResolver
	HeadReader
}
