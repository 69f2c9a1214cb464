// Package system reads the process environment the prompt reports on:
// hostname, login name, home directory and environment variables.
package system

import (
	"os"
	"os/user"
	"strings"

	"github.com/spf13/afero"

	"github.com/xvierd/promptline/internal/domain"
	"github.com/xvierd/promptline/internal/ports"
)

// HostnameFile is where the static hostname lives on most Linux systems.
const HostnameFile = "/etc/hostname"

// Env implements ports.Environment. A nil map reads the real environment.
type Env map[string]string

var _ ports.Environment = Env(nil)

// LookupEnv returns the variable from the map, or from the process when the
// map is nil.
func (e Env) LookupEnv(name string) (string, bool) {
	if e == nil {
		return os.LookupEnv(name)
	}
	v, ok := e[name]
	return v, ok
}

// System implements the hostname, username and home collaborators.
type System struct {
	fs       afero.Fs
	env      ports.Environment
	hostname func() (string, error)
	home     func() (string, error)
}

var (
	_ ports.HostnameReader = (*System)(nil)
	_ ports.UsernameReader = (*System)(nil)
	_ ports.HomeResolver   = (*System)(nil)
)

// New creates a System reading the real filesystem and environment.
func New() *System {
	return NewWith(afero.NewOsFs(), Env(nil))
}

// NewWith creates a System over the given filesystem and environment.
// Fallbacks to the OS (os.Hostname, the user account entry) apply only when
// the environment is the real one.
func NewWith(fs afero.Fs, env ports.Environment) *System {
	s := &System{fs: fs, env: env}
	if e, ok := env.(Env); ok && e == nil {
		s.hostname = os.Hostname
		s.home = accountHome
	}
	return s
}

// accountHome reads the current user's home directory from the account
// database rather than the environment.
func accountHome() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.HomeDir, nil
}

// Hostname reads HostnameFile, falling back to the kernel hostname when the
// file is missing.
func (s *System) Hostname() (string, error) {
	data, err := afero.ReadFile(s.fs, HostnameFile)
	if err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name, nil
		}
	}
	if s.hostname != nil {
		if name, herr := s.hostname(); herr == nil && name != "" {
			return name, nil
		}
	}
	if err == nil {
		err = os.ErrNotExist
	}
	return "", &domain.IoError{Op: "read", Path: HostnameFile, Err: err}
}

// Username returns $USER.
func (s *System) Username() (string, error) {
	name, ok := s.env.LookupEnv("USER")
	if !ok {
		return "", &domain.EnvError{Name: "USER"}
	}
	return name, nil
}

// Home returns $HOME, then the account database entry when HOME is unset.
func (s *System) Home() (string, bool) {
	if home, ok := s.env.LookupEnv("HOME"); ok && home != "" {
		return home, true
	}
	if s.home != nil {
		if home, err := s.home(); err == nil && home != "" {
			return home, true
		}
	}
	return "", false
}
