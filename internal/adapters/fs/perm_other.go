//go:build !unix

package fs

import (
	"os"

	"github.com/xvierd/promptline/internal/domain"
	"github.com/xvierd/promptline/internal/ports"
)

// Permissions implements ports.PermissionChecker using only the mode bits.
type Permissions struct{}

var _ ports.PermissionChecker = (*Permissions)(nil)

// NewPermissions returns a checker for platforms without unix credentials.
func NewPermissions() *Permissions {
	return &Permissions{}
}

// IsSuperuser is always false here.
func (p *Permissions) IsSuperuser() bool { return false }

// CanWrite reports whether any write bit is set on dir.
func (p *Permissions) CanWrite(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return false, &domain.IoError{Op: "stat", Path: dir, Err: err}
	}
	return info.Mode().Perm()&0o222 != 0, nil
}
