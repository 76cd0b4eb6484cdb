package system

import (
	"bytes"
	"errors"
	"io"
	"os/exec"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestOpenerFor(t *testing.T) {
	tests := []struct {
		goos        string
		wantCommand string
		wantArgs    []string
	}{
		{"linux", "xdg-open", nil},
		{"freebsd", "xdg-open", nil},
		{"darwin", "open", nil},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			command, args := openerFor(tt.goos)
			assert.Equal(t, tt.wantCommand, command)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBrowser_OpenLink(t *testing.T) {
	t.Run("rejects malformed link without running anything", func(t *testing.T) {
		b := NewBrowser(quietLogger())
		b.SetCommand("/definitely/not/here")

		err := b.OpenLink("not a url")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "scheme must be http or https")
	})

	t.Run("reports missing opener", func(t *testing.T) {
		b := NewBrowser(quietLogger())
		b.SetCommand("/definitely/not/here")

		err := b.OpenLink("https://github.com/octocat/Hello-World")

		assert.ErrorContains(t, err, "failed to start")
	})

	t.Run("starts opener", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("needs a unix true binary")
		}
		truePath, err := exec.LookPath("true")
		if err != nil {
			t.Skip("true not available")
		}
		b := NewBrowser(quietLogger())
		b.SetCommand(truePath)

		assert.NoError(t, b.OpenLink("https://github.com/octocat/Hello-World"))
	})
}

func TestSharer_ShareLink(t *testing.T) {
	const link = "https://github.com/octocat/Hello-World"

	t.Run("uses system clipboard", func(t *testing.T) {
		var copied string
		var terminal bytes.Buffer
		s := &Sharer{
			writeClipboard: func(text string) error { copied = text; return nil },
			terminal:       &terminal,
			logger:         quietLogger(),
		}

		require.NoError(t, s.ShareLink(link))
		assert.Equal(t, link, copied)
		assert.Zero(t, terminal.Len())
	})

	t.Run("falls back to osc52 when clipboard fails", func(t *testing.T) {
		var terminal bytes.Buffer
		s := &Sharer{
			writeClipboard: func(string) error { return errors.New("xclip missing") },
			terminal:       &terminal,
			logger:         quietLogger(),
		}

		require.NoError(t, s.ShareLink(link))
		assert.Contains(t, terminal.String(), "\x1b]52;c;")
	})

	t.Run("set terminal redirects the fallback", func(t *testing.T) {
		var stdout, screen bytes.Buffer
		s := &Sharer{
			writeClipboard: func(string) error { return nil },
			unsupported:    true,
			terminal:       &stdout,
			logger:         quietLogger(),
		}
		s.SetTerminal(&screen)

		require.NoError(t, s.ShareLink(link))
		assert.Zero(t, stdout.Len())
		assert.Contains(t, screen.String(), "\x1b]52;c;")
	})

	t.Run("skips unsupported clipboard", func(t *testing.T) {
		called := false
		var terminal bytes.Buffer
		s := &Sharer{
			writeClipboard: func(string) error { called = true; return nil },
			unsupported:    true,
			terminal:       &terminal,
			inTmux:         true,
			logger:         quietLogger(),
		}

		require.NoError(t, s.ShareLink(link))
		assert.False(t, called)
		assert.Contains(t, terminal.String(), "\x1bPtmux;")
	})

	t.Run("rejects malformed link", func(t *testing.T) {
		called := false
		s := &Sharer{
			writeClipboard: func(string) error { called = true; return nil },
			terminal:       io.Discard,
			logger:         quietLogger(),
		}

		assert.Error(t, s.ShareLink(""))
		assert.False(t, called)
	})
}
