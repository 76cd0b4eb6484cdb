package system

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/ghsearch/internal/domain"
)

// Browser opens links with the platform's URL handler.
type Browser struct {
	command string
	args    []string
	logger  logrus.FieldLogger
}

// NewBrowser creates a Browser for the running platform.
func NewBrowser(logger logrus.FieldLogger) *Browser {
	command, args := openerFor(runtime.GOOS)
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Browser{
		command: command,
		args:    args,
		logger:  logger.WithField("component", "browser"),
	}
}

// SetCommand overrides the opener executable and its leading arguments
// (useful for testing or unusual desktops).
func (b *Browser) SetCommand(command string, args ...string) {
	b.command = command
	b.args = args
}

// OpenLink asks the desktop to show link in a browser. It returns once the
// opener has been started; the opener's own exit status is only logged.
func (b *Browser) OpenLink(link string) error {
	if err := domain.ValidateLink(link); err != nil {
		return err
	}

	args := append(append([]string{}, b.args...), link)
	cmd := exec.Command(b.command, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", b.command, err)
	}

	log := b.logger.WithField("url", link)
	log.Debug("Browser opener started")
	go func() {
		if err := cmd.Wait(); err != nil {
			log.WithError(err).Warn("Browser opener exited with error")
		}
	}()

	return nil
}

// openerFor returns the URL handler command for goos.
func openerFor(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
