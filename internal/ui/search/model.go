// Package search implements the interactive repository search screen.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/ghsearch/internal/domain"
	"github.com/yourusername/ghsearch/internal/ui"
	"github.com/yourusername/ghsearch/internal/ui/components"
	"github.com/yourusername/ghsearch/internal/ui/layout"
	"github.com/yourusername/ghsearch/internal/usecase"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// Deps holds what the search screen needs from the outside world.
type Deps struct {
	Store   usecase.KeyValueStore
	Fetcher usecase.RepositoryFetcher
	Opener  usecase.LinkOpener
	Sharer  usecase.LinkSharer
	Logger  logrus.FieldLogger

	// Terminal receives raw terminal sequences from the sharer. They are
	// written out between frames.
	Terminal *TerminalOutput

	// Username overrides the saved username when non-empty.
	Username string
	// AutoSubmit searches for the pre-filled username on start.
	AutoSubmit bool
}

// fetchDoneMsg carries a finished FetchJob back onto the UI loop.
type fetchDoneMsg struct {
	completion usecase.FetchCompletion
}

// submitMsg asks the model to submit whatever is in the input.
type submitMsg struct{}

// toastExpiredMsg clears the toast with the matching sequence number.
type toastExpiredMsg struct {
	seq int
}

type toast struct {
	title    string
	message  string
	severity components.ErrorSeverity
	action   string
}

// notificationQueue is the Notifier handed to the controller. The model
// drains it after every controller call.
type notificationQueue struct {
	pending []domain.Notification
}

func (q *notificationQueue) Notify(n domain.Notification) {
	q.pending = append(q.pending, n)
}

func (q *notificationQueue) drain() []domain.Notification {
	out := q.pending
	q.pending = nil
	return out
}

// Model is the bubbletea model for the search screen.
type Model struct {
	controller *usecase.ScreenController
	list       *usecase.RepositoryList
	notes      *notificationQueue
	terminal   *TerminalOutput

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	focus      focusArea
	cursor     int
	autoSubmit bool

	toast    *toast
	toastSeq int
	toastTTL time.Duration

	windowWidth  int
	windowHeight int
	quitting     bool
}

// New builds the search screen, restoring the saved username.
func New(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	styles := ui.GetGlobalThemeManager().GetStyles()
	notes := &notificationQueue{}
	list := usecase.NewRepositoryList(deps.Opener, deps.Sharer, logger)
	controller := usecase.NewScreenController(usecase.ScreenControllerDeps{
		Store:     deps.Store,
		Fetcher:   deps.Fetcher,
		Presenter: list,
		Notifier:  notes,
		Logger:    logger,
	})

	input := textinput.New()
	input.Placeholder = "GitHub username"
	input.Prompt = "@ "
	input.CharLimit = 39
	input.Width = 40
	input.Focus()

	if saved := controller.Start(); saved != "" {
		input.SetValue(saved)
	}
	if deps.Username != "" {
		input.SetValue(deps.Username)
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Loading),
	)

	m := Model{
		controller:   controller,
		list:         list,
		notes:        notes,
		terminal:     deps.Terminal,
		input:        input,
		viewport:     viewport.New(76, 10),
		spinner:      sp,
		focus:        focusInput,
		autoSubmit:   deps.AutoSubmit,
		toastTTL:     ToastDuration,
		windowWidth:  80,
		windowHeight: 30,
	}
	m.resize()
	m.updateViewportContent()

	return m
}

// Init starts the cursor blink and the optional auto-submit.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.autoSubmit {
		cmds = append(cmds, func() tea.Msg { return submitMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the search screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resize()
		m.updateViewportContent()
		return m, nil

	case submitMsg:
		return m.submit()

	case fetchDoneMsg:
		m.controller.Complete(msg.completion)
		if m.controller.State() == usecase.StateLoaded {
			m.cursor = 0
			m.viewport.GotoTop()
		}
		m.updateViewportContent()
		return m, m.showNotifications()

	case terminalWrittenMsg:
		if msg.err != nil {
			return m, m.setToast(toast{title: "Could not share link", message: msg.err.Error(), severity: components.SeverityError})
		}
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
			m.resize()
		}
		return m, nil

	case spinner.TickMsg:
		if m.controller.State() != usecase.StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.controller.Close()
		m.quitting = true
		return m, tea.Quit
	case "tab":
		return m.toggleFocus()
	}

	if m.focus == focusInput {
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "home", "g":
		m.moveCursor(-m.cursor)
	case "end", "G":
		m.moveCursor(m.list.Len())
	case "o", "enter":
		return m, m.openSelected()
	case "s":
		return m, m.shareSelected()
	}
	return m, nil
}

func (m Model) toggleFocus() (tea.Model, tea.Cmd) {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		m.updateViewportContent()
		return m, nil
	}

	m.focus = focusInput
	m.updateViewportContent()
	return m, m.input.Focus()
}

// submit hands the input to the controller and, when accepted, runs the
// fetch job off the UI loop.
func (m Model) submit() (tea.Model, tea.Cmd) {
	job, ok := m.controller.Submit(m.input.Value())
	toastCmd := m.showNotifications()
	if !ok {
		return m, toastCmd
	}

	m.updateViewportContent()
	return m, tea.Batch(toastCmd, runFetch(job), m.spinner.Tick)
}

func runFetch(job usecase.FetchJob) tea.Cmd {
	return func() tea.Msg {
		return fetchDoneMsg{completion: job(context.Background())}
	}
}

func (m *Model) openSelected() tea.Cmd {
	if m.list.Len() == 0 {
		return nil
	}
	repo, _ := m.list.At(m.cursor)
	if err := m.list.Open(m.cursor); err != nil {
		return m.setToast(toast{title: "Could not open link", message: err.Error(), severity: components.SeverityError})
	}
	return m.setToast(toast{title: "Opened", message: repo.HTMLURL, severity: components.SeverityInfo})
}

func (m *Model) shareSelected() tea.Cmd {
	if m.list.Len() == 0 {
		return nil
	}
	repo, _ := m.list.At(m.cursor)
	if err := m.list.Share(m.cursor); err != nil {
		return m.setToast(toast{title: "Could not share link", message: err.Error(), severity: components.SeverityError})
	}
	return tea.Batch(
		m.setToast(toast{title: "Link copied", message: repo.HTMLURL, severity: components.SeverityInfo}),
		m.terminal.flush(),
	)
}

// showNotifications turns whatever the controller reported into a toast.
// Only the latest notification is shown.
func (m *Model) showNotifications() tea.Cmd {
	notes := m.notes.drain()
	if len(notes) == 0 {
		return nil
	}

	n := notes[len(notes)-1]
	t := toast{title: "Error", message: n.Message, severity: components.SeverityError, action: "check the username and try again"}
	if n.Kind == domain.NotificationValidation {
		t.title = "Invalid input"
		t.severity = components.SeverityWarning
		t.action = ""
	}
	return m.setToast(t)
}

func (m *Model) setToast(t toast) tea.Cmd {
	m.toastSeq++
	m.toast = &t
	m.resize()

	seq := m.toastSeq
	return tea.Tick(m.toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) moveCursor(delta int) {
	n := m.list.Len()
	if n == 0 {
		m.cursor = 0
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	m.updateViewportContent()
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	top := m.cursor * layout.RowHeight
	bottom := top + layout.RowHeight
	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m *Model) resize() {
	m.viewport.Width = layout.ContentWidth(m.windowWidth)
	m.viewport.Height = layout.CalculateListHeight(m.windowHeight, m.toast != nil)
	m.input.Width = min(40, m.viewport.Width-4)
}

// updateViewportContent re-renders the rows into the viewport.
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.renderRows())
}

func (m Model) renderRows() string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	if m.list.Len() == 0 {
		switch m.controller.State() {
		case usecase.StateLoaded:
			return styles.Metadata.Render(fmt.Sprintf("%s has no public repositories.", m.controller.Username()))
		case usecase.StateLoading:
			return ""
		default:
			return styles.Metadata.Render("Type a GitHub username and press enter.") + "\n" +
				components.HelpText("tab switches focus", "esc quits")
		}
	}

	width := m.viewport.Width
	var b strings.Builder
	for i, row := range m.list.Rows() {
		selected := m.focus == focusList && i == m.cursor

		cursor := "  "
		nameStyle := styles.RowNormal
		if selected {
			cursor = styles.RowCursor.Render("▸ ")
			nameStyle = styles.RowSelected
		}

		line := cursor + nameStyle.Render(row.Name)
		if row.Description != "" {
			room := width - lipgloss.Width(line) - 3
			if room > 8 {
				line += "  " + styles.RowMeta.Render(components.TruncateText(row.Description, room))
			}
		}

		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line + "\n")
		b.WriteString("  " + styles.RowURL.Render(components.TruncateText(row.URL, width-2)) + "\n")
		b.WriteString("  " + styles.RowMeta.Render(components.TruncateText(row.Meta, width-2)))
	}
	return b.String()
}

// View renders the search screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	styles := ui.GetGlobalThemeManager().GetStyles()

	header := components.RenderLogo("Browse a GitHub user's repositories")
	if m.windowHeight < layout.HeaderHeight+layout.InputHeight+layout.FooterHeight+layout.MinListHeight {
		header = components.RenderBranding()
	}

	inputStyle := styles.FormInput
	if m.focus == focusInput {
		inputStyle = styles.FormInputFocused
	}
	inputRow := lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render(m.input.View()),
		"  ",
		m.renderStatus(),
	)

	listStyle := styles.ListBox
	if m.focus == focusList {
		listStyle = styles.ListBoxFocused
	}
	list := listStyle.Render(m.viewport.View())

	sections := []string{header, inputRow}
	if m.toast != nil {
		sections = append(sections, m.renderToast())
	}
	sections = append(sections, list, components.SearchFooter(m.focus == focusList, m.footerMetadata(), m.windowWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatus() string {
	styles := ui.GetGlobalThemeManager().GetStyles()

	switch m.controller.State() {
	case usecase.StateLoading:
		return m.spinner.View() + styles.Loading.Render(" Fetching "+m.controller.Username()+"…")
	case usecase.StateLoaded:
		return components.StatusLine("✓", components.FormatCount(m.list.Len(), "repository", "repositories"), "success")
	case usecase.StateFailed:
		return components.StatusLine("✗", "Last search failed", "error")
	default:
		return ""
	}
}

func (m Model) renderToast() string {
	var banner *components.ErrorBanner
	switch m.toast.severity {
	case components.SeverityWarning:
		banner = components.NewWarningBanner(m.toast.message)
	case components.SeverityInfo:
		banner = components.NewInfoBanner(m.toast.message)
	default:
		banner = components.NewErrorBanner(m.toast.message)
	}
	banner = banner.WithTitle(m.toast.title)
	if m.windowWidth > 0 {
		banner = banner.WithWidth(layout.ContentWidth(m.windowWidth))
	}
	if m.toast.action != "" {
		banner = banner.WithActions(m.toast.action)
	}
	return banner.Render()
}

func (m Model) footerMetadata() string {
	if m.list.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("%d/%d", m.cursor+1, m.list.Len())
}

// Closed reports whether the user has left the screen.
func (m Model) Closed() bool {
	return m.controller.Closed()
}
