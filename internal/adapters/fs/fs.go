// Package fs provides filesystem existence checks backed by afero.
package fs

import (
	"github.com/spf13/afero"

	"github.com/xvierd/promptline/internal/ports"
)

// Checker implements ports.ExistenceChecker on top of an afero filesystem.
type Checker struct {
	fs afero.Fs
}

// Ensure Checker implements ports.ExistenceChecker.
var _ ports.ExistenceChecker = (*Checker)(nil)

// NewChecker creates a checker over fs.
func NewChecker(fs afero.Fs) *Checker {
	return &Checker{fs: fs}
}

// NewOSChecker creates a checker over the real filesystem.
func NewOSChecker() *Checker {
	return NewChecker(afero.NewOsFs())
}

// Exists reports whether path exists. Stat errors other than "not found"
// (permission denied, I/O) are treated as absent as well.
func (c *Checker) Exists(path string) bool {
	ok, err := afero.Exists(c.fs, path)
	return err == nil && ok
}
