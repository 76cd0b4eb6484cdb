package github

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGH writes a shell script standing in for the gh binary.
func fakeGH(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "gh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))
	return path
}

func TestGHCLI(t *testing.T) {
	ctx := context.Background()

	t.Run("signed in", func(t *testing.T) {
		gh := NewGHCLI(fakeGH(t, `case "$1" in
  --version) echo "gh version 2.40.0" ;;
  auth) echo "gho_abc123" ;;
  api) echo "octocat" ;;
  *) exit 1 ;;
esac
`))

		assert.True(t, gh.Available(ctx))

		token, err := gh.Token(ctx)
		require.NoError(t, err)
		assert.Equal(t, "gho_abc123", token)

		login, err := gh.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "octocat", login)
	})

	t.Run("signed out", func(t *testing.T) {
		gh := NewGHCLI(fakeGH(t, `echo "You are not logged into any GitHub hosts" >&2
exit 1
`))

		_, err := gh.Token(ctx)
		assert.ErrorContains(t, err, "not logged into")

		_, err = gh.CurrentUser(ctx)
		assert.ErrorContains(t, err, "failed to get current user")
	})

	t.Run("empty output", func(t *testing.T) {
		gh := NewGHCLI(fakeGH(t, "exit 0\n"))

		_, err := gh.Token(ctx)
		assert.ErrorContains(t, err, "empty output")
	})

	t.Run("not installed", func(t *testing.T) {
		gh := NewGHCLI(filepath.Join(t.TempDir(), "missing-gh"))

		assert.False(t, gh.Available(ctx))
		_, err := gh.Token(ctx)
		assert.Error(t, err)
	})

	t.Run("default path", func(t *testing.T) {
		assert.Equal(t, "gh", NewGHCLI("").ghPath)
	})
}
