package search

import (
	"bytes"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TerminalOutput holds bytes meant for the terminal itself, such as OSC 52
// clipboard sequences. The screen flushes them through tea.Exec so they are
// written to the program's output while the renderer is released.
type TerminalOutput struct {
	buf bytes.Buffer
}

// Write queues p for the next flush.
func (t *TerminalOutput) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// Pending reports how many bytes wait for a flush.
func (t *TerminalOutput) Pending() int {
	if t == nil {
		return 0
	}
	return t.buf.Len()
}

func (t *TerminalOutput) flush() tea.Cmd {
	if t.Pending() == 0 {
		return nil
	}
	data := bytes.Clone(t.buf.Bytes())
	t.buf.Reset()
	return tea.Exec(&rawWrite{data: data}, func(err error) tea.Msg {
		return terminalWrittenMsg{err: err}
	})
}

type terminalWrittenMsg struct {
	err error
}

// rawWrite is an ExecCommand that writes data to whatever output the
// program hands it.
type rawWrite struct {
	data []byte
	out  io.Writer
}

func (w *rawWrite) Run() error {
	if w.out == nil {
		return nil
	}
	_, err := w.out.Write(w.data)
	return err
}

func (w *rawWrite) SetStdin(io.Reader)      {}
func (w *rawWrite) SetStdout(out io.Writer) { w.out = out }
func (w *rawWrite) SetStderr(io.Writer)     {}
