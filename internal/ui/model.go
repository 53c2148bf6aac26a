package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/standup/internal/files"
	"github.com/faizmokh/standup/internal/standup"
)

// Options configures the browser.
type Options struct {
	// Date selects the month shown first. Zero means today.
	Date time.Time
	// Editor is the command run by the edit binding. Empty disables it.
	Editor string
	Clock  standup.Clock
}

// Model browses one month of standup entries at a time, newest first.
type Model struct {
	ctx     context.Context
	locator *standup.Locator
	clock   standup.Clock
	editor  string

	month    time.Time
	file     string
	entries  []*standup.Entry
	selected int

	keys     KeyMap
	help     help.Model
	showHelp bool

	loading    bool
	statusLine string
	errorLine  string
}

type monthLoadedMsg struct {
	month   time.Time
	file    string
	entries *standup.EntryList
	err     error
}

type editorFinishedMsg struct {
	err error
}

// NewModel seeds a browser reading month files through locator.
func NewModel(ctx context.Context, locator *standup.Locator, opts Options) Model {
	date := opts.Date
	if date.IsZero() {
		date = standup.Today(opts.Clock)
	}
	month := firstOfMonth(date)
	return Model{
		ctx:        ctx,
		locator:    locator,
		clock:      opts.Clock,
		editor:     opts.Editor,
		month:      month,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		loading:    true,
		statusLine: fmt.Sprintf("Loading %s...", month.Format("January 2006")),
	}
}

// Init loads the initial month.
func (m Model) Init() tea.Cmd {
	return m.loadMonthCmd(m.month)
}

// Update wires state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case monthLoadedMsg:
		return m.handleMonthLoaded(msg)
	case editorFinishedMsg:
		if msg.err != nil {
			m.errorLine = fmt.Sprintf("Editor failed: %v", msg.err)
			m.statusLine = ""
			return m, nil
		}
		return m.reload()
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
			m.statusLine = m.selectionStatus()
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
			m.statusLine = m.selectionStatus()
			m.errorLine = ""
		}
	case key.Matches(msg, m.keys.PrevMonth):
		return m.gotoMonth(m.month.AddDate(0, -1, 0))
	case key.Matches(msg, m.keys.NextMonth):
		return m.gotoMonth(m.month.AddDate(0, 1, 0))
	case key.Matches(msg, m.keys.Today):
		return m.gotoMonth(firstOfMonth(standup.Today(m.clock)))
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Edit):
		return m.editFile()
	}
	return m, nil
}

func (m Model) handleMonthLoaded(msg monthLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for months we no longer display.
	if !msg.month.Equal(m.month) {
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load %s: %v", msg.month.Format("January 2006"), msg.err)
		m.statusLine = ""
		m.entries = nil
		m.file = ""
		return m, nil
	}

	m.errorLine = ""
	m.file = msg.file
	m.entries = msg.entries.SortReverse().Entries()
	if m.selected >= len(m.entries) {
		m.selected = max(len(m.entries)-1, 0)
	}
	if len(m.entries) == 0 {
		m.statusLine = fmt.Sprintf("%s has no entries.", msg.month.Format("January 2006"))
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d entr%s.", len(m.entries), plural(len(m.entries)))
	}
	return m, nil
}

func (m Model) gotoMonth(month time.Time) (tea.Model, tea.Cmd) {
	if month.Equal(m.month) {
		return m.reload()
	}
	m.month = month
	m.entries = nil
	m.file = ""
	m.selected = 0
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", month.Format("January 2006"))
	m.errorLine = ""
	return m, m.loadMonthCmd(month)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.month.Format("January 2006"))
	m.errorLine = ""
	return m, m.loadMonthCmd(m.month)
}

func (m Model) editFile() (tea.Model, tea.Cmd) {
	switch {
	case m.editor == "":
		m.errorLine = "No editor configured."
		return m, nil
	case m.file == "":
		m.errorLine = fmt.Sprintf("No file for %s.", m.month.Format("January 2006"))
		return m, nil
	}
	m.statusLine = "Opening editor..."
	m.errorLine = ""
	return m, tea.ExecProcess(files.EditorCommand(m.editor, m.file), func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

func (m Model) loadMonthCmd(month time.Time) tea.Cmd {
	locator := m.locator
	return func() tea.Msg {
		file, err := locator.Existing(month)
		if errors.Is(err, standup.ErrNotFound) {
			return monthLoadedMsg{month: month, entries: standup.NewEntryList()}
		}
		if err != nil {
			return monthLoadedMsg{month: month, err: err}
		}
		entries, err := file.Load()
		if err != nil {
			return monthLoadedMsg{month: month, err: err}
		}
		return monthLoadedMsg{month: month, file: file.Name(), entries: entries}
	}
}

func (m Model) selectionStatus() string {
	return fmt.Sprintf("Selected entry %d of %d", m.selected+1, len(m.entries))
}

// Selected returns the highlighted entry, if any.
func (m Model) Selected() *standup.Entry {
	if m.selected < 0 || m.selected >= len(m.entries) {
		return nil
	}
	return m.entries[m.selected]
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.month.Format("January 2006")))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("(no entries)\n")
	default:
		for i, entry := range m.entries {
			label := entry.Date.Format("Mon 02 Jan")
			if i == m.selected {
				b.WriteString(selectedDateStyle.Render("> " + label))
			} else {
				b.WriteString(dateStyle.Render("  " + label))
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
		b.WriteString(m.renderEntry(m.Selected()))
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) renderEntry(entry *standup.Entry) string {
	if entry == nil {
		return ""
	}
	format := m.locator.Format()
	var b strings.Builder
	for _, section := range format.SubHeaderOrder() {
		tasks := entry.Tasks(section)
		if len(tasks) == 0 {
			continue
		}
		b.WriteString(sectionStyle.Render(format.Header(section)))
		b.WriteByte('\n')
		for _, task := range tasks {
			b.WriteString("  ")
			b.WriteString(format.BulletCharacter())
			b.WriteByte(' ')
			b.WriteString(task)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func firstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
