//go:build unix

package fs

import (
	"slices"

	"golang.org/x/sys/unix"

	"github.com/xvierd/promptline/internal/domain"
	"github.com/xvierd/promptline/internal/ports"
)

const (
	ownerWrite = 0o200
	groupWrite = 0o020
	otherWrite = 0o002
)

// Permissions implements ports.PermissionChecker with stat(2) and the
// process credentials.
type Permissions struct {
	uid    int
	groups []int
}

// Ensure Permissions implements ports.PermissionChecker.
var _ ports.PermissionChecker = (*Permissions)(nil)

// NewPermissions captures the credentials of the running process.
func NewPermissions() *Permissions {
	groups, err := unix.Getgroups()
	if err != nil {
		groups = nil
	}
	return &Permissions{
		uid:    unix.Getuid(),
		groups: append(groups, unix.Getgid()),
	}
}

// IsSuperuser reports whether the process runs as root.
func (p *Permissions) IsSuperuser() bool {
	return p.uid == 0
}

// CanWrite checks the write bits of dir against the process credentials.
func (p *Permissions) CanWrite(dir string) (bool, error) {
	var st unix.Stat_t
	if err := unix.Stat(dir, &st); err != nil {
		return false, &domain.IoError{Op: "stat", Path: dir, Err: err}
	}
	return canWrite(p.uid, p.groups, uint32(st.Mode), st.Uid, st.Gid), nil
}

func canWrite(uid int, groups []int, mode, ownerUID, ownerGID uint32) bool {
	switch {
	case uid == 0:
		return true
	case mode&ownerWrite != 0 && uint32(uid) == ownerUID:
		return true
	case mode&groupWrite != 0 && slices.Contains(groups, int(ownerGID)):
		return true
	case mode&otherWrite != 0:
		return true
	}
	return false
}

