package system

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/ghsearch/internal/domain"
)

// Sharer hands a link to the user's clipboard, the closest thing a terminal
// has to a share sheet.
type Sharer struct {
	writeClipboard func(string) error
	unsupported    bool
	terminal       io.Writer
	inTmux         bool
	logger         logrus.FieldLogger
}

// NewSharer creates a Sharer using the system clipboard and, when no
// clipboard utility is installed, the terminal's OSC 52 support on stdout.
func NewSharer(logger logrus.FieldLogger) *Sharer {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Sharer{
		writeClipboard: clipboard.WriteAll,
		unsupported:    clipboard.Unsupported,
		terminal:       os.Stdout,
		inTmux:         os.Getenv("TMUX") != "",
		logger:         logger.WithField("component", "share"),
	}
}

// SetTerminal redirects the OSC 52 fallback to w. Interactive screens pass
// a writer they flush while their renderer is paused.
func (s *Sharer) SetTerminal(w io.Writer) {
	s.terminal = w
}

// ShareLink copies link so it can be pasted anywhere.
func (s *Sharer) ShareLink(link string) error {
	if err := domain.ValidateLink(link); err != nil {
		return err
	}

	log := s.logger.WithField("url", link)

	if !s.unsupported {
		err := s.writeClipboard(link)
		if err == nil {
			log.Debug("Link copied to system clipboard")
			return nil
		}
		log.WithError(err).Warn("System clipboard failed, falling back to OSC 52")
	}

	seq := osc52.New(link)
	if s.inTmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.terminal); err != nil {
		log.WithError(err).Error("Failed to write OSC 52 sequence")
		return err
	}

	log.Debug("Link sent to terminal clipboard")
	return nil
}
