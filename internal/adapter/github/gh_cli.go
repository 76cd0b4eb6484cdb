package github

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// GHCLI talks to an installed GitHub CLI to borrow its credentials and
// signed-in login.
type GHCLI struct {
	ghPath string // Path to gh executable (defaults to "gh")
}

// NewGHCLI creates a GHCLI using path, or "gh" from PATH when path is empty.
func NewGHCLI(path string) *GHCLI {
	if path == "" {
		path = "gh"
	}
	return &GHCLI{ghPath: path}
}

// run executes a gh command and returns trimmed stdout and stderr.
func (g *GHCLI) run(ctx context.Context, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, g.ghPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err
}

// Available reports whether gh is installed and runnable.
func (g *GHCLI) Available(ctx context.Context) bool {
	_, _, err := g.run(ctx, "--version")
	return err == nil
}

// Token returns the token gh is signed in with.
func (g *GHCLI) Token(ctx context.Context) (string, error) {
	out, stderr, err := g.run(ctx, "auth", "token")
	if err != nil {
		return "", errors.Wrapf(err, "gh auth token: %s", stderr)
	}
	if out == "" {
		return "", errors.New("gh auth token: empty output")
	}
	return out, nil
}

// CurrentUser returns the login of the authenticated GitHub user.
func (g *GHCLI) CurrentUser(ctx context.Context) (string, error) {
	out, stderr, err := g.run(ctx, "api", "user", "--jq", ".login")
	if err != nil {
		return "", errors.Wrapf(err, "failed to get current user: %s", stderr)
	}
	if out == "" {
		return "", errors.New("failed to get current user: empty login")
	}
	return out, nil
}
