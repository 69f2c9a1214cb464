package system

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/promptline/internal/domain"
)

func TestSystem_Hostname(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, HostnameFile, []byte("  devbox\n"), 0o644))

	name, err := NewWith(mem, Env{}).Hostname()

	require.NoError(t, err)
	assert.Equal(t, "devbox", name)
}

func TestSystem_Hostname_Missing(t *testing.T) {
	_, err := NewWith(afero.NewMemMapFs(), Env{}).Hostname()

	var ioErr *domain.IoError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, HostnameFile, ioErr.Path)
}

func TestSystem_Hostname_Empty(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, HostnameFile, []byte("\n"), 0o644))

	_, err := NewWith(mem, Env{}).Hostname()

	assert.Error(t, err)
}

func TestSystem_Username(t *testing.T) {
	s := NewWith(afero.NewMemMapFs(), Env{"USER": "alice"})

	name, err := s.Username()

	require.NoError(t, err)
	assert.Equal(t, "alice", name)
}

func TestSystem_Username_Missing(t *testing.T) {
	_, err := NewWith(afero.NewMemMapFs(), Env{}).Username()

	var envErr *domain.EnvError
	require.True(t, errors.As(err, &envErr))
	assert.Equal(t, "USER", envErr.Name)
}

func TestSystem_Home(t *testing.T) {
	tests := []struct {
		name   string
		env    Env
		want   string
		wantOK bool
	}{
		{"set", Env{"HOME": "/home/alice"}, "/home/alice", true},
		{"unset", Env{}, "", false},
		{"empty", Env{"HOME": ""}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home, ok := NewWith(afero.NewMemMapFs(), tt.env).Home()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, home)
		})
	}
}

func TestEnv_NilReadsProcess(t *testing.T) {
	t.Setenv("PROMPTLINE_TEST_VAR", "x")

	v, ok := Env(nil).LookupEnv("PROMPTLINE_TEST_VAR")

	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestSystem_Home_AccountFallback(t *testing.T) {
	s := &System{fs: afero.NewMemMapFs(), env: Env{}, home: func() (string, error) {
		return "/var/lib/alice", nil
	}}

	home, ok := s.Home()

	assert.True(t, ok)
	assert.Equal(t, "/var/lib/alice", home)
}

func TestSystem_Home_UnsetUsesAccount(t *testing.T) {
	want, err := accountHome()
	if err != nil || want == "" {
		t.Skip("no account entry for the current user")
	}
	t.Setenv("HOME", "")
	require.NoError(t, os.Unsetenv("HOME"))

	home, ok := New().Home()

	assert.True(t, ok)
	assert.Equal(t, want, home)
}
