package ports

// ExistenceChecker reports whether a path exists. Any error counts as absent.
type ExistenceChecker interface {
	Exists(path string) bool
}

// ExistsFunc adapts a plain function to ExistenceChecker.
type ExistsFunc func(path string) bool

// Exists calls f(path).
func (f ExistsFunc) Exists(path string) bool { return f(path) }

// HomeResolver returns the invoking user's home directory. ok is false when
// it can not be determined.
type HomeResolver interface {
	Home() (home string, ok bool)
}

// HostnameReader returns the machine's hostname.
type HostnameReader interface {
	Hostname() (string, error)
}

// UsernameReader returns the invoking user's login name.
type UsernameReader interface {
	Username() (string, error)
}

// Environment looks up environment variables.
type Environment interface {
	LookupEnv(name string) (string, bool)
}

// PermissionChecker answers questions about the invoking user's rights.
type PermissionChecker interface {
	// IsSuperuser reports whether the process runs as uid 0.
	IsSuperuser() bool
	// CanWrite reports whether the process may write to dir.
	CanWrite(dir string) (bool, error)
}
