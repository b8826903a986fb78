package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"statuschip/internal/config"
	"statuschip/internal/tui/state"
	"statuschip/internal/tui/util"
	"statuschip/internal/tui/views/board"
	"statuschip/internal/tui/widgets/helpoverlay"
	"statuschip/internal/tui/widgets/statusbar"
	chips "statuschip/internal/tui/widgets/statuschip"
)

// Options configure a gallery run.
type Options struct {
	NoColor bool
	Feed    <-chan config.Entry // optional live updates, see ReadFeed
	Log     logr.Logger
}

// Run shows the board as an interactive chip gallery.
// It returns the UI state at exit so callers can report what was dismissed.
func Run(b *config.Board, opts Options) (state.UIState, error) {
	m := newModel(b, opts)
	popts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Feed != nil {
		// stdin usually carries the feed; read keys from the terminal instead
		popts = append(popts, tea.WithInputTTY())
	}
	p := tea.NewProgram(m, popts...)
	final, err := p.Run()
	if err != nil {
		return state.UIState{}, err
	}
	if fm, ok := final.(model); ok {
		return fm.st, nil
	}
	return m.st, nil
}

// ===== Keys =====

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Icons   key.Binding
	Dismiss key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Icons:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "icons")),
		Dismiss: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "dismiss")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Icons, k.Dismiss, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Icons, k.Dismiss, k.Copy}, {k.Help, k.Quit}}
}

// ===== Model =====

type model struct {
	// data
	board   *config.Board
	entries map[string]config.Entry // message -> entry (content, id, class)
	memos   map[string]*chips.Memo  // message -> memoized chip

	// ui state
	st      state.UIState
	keys    keyMap
	help    help.Model
	bar     statusbar.StatusBar
	overlay helpoverlay.HelpOverlay

	feed <-chan config.Entry
	copy func(string) error
	log  logr.Logger
}

func newModel(b *config.Board, opts Options) model {
	entries := make(map[string]config.Entry, len(b.Statuses))
	for _, e := range b.Statuses {
		entries[e.Message] = e
	}
	return model{
		board:   b,
		entries: entries,
		memos:   map[string]*chips.Memo{},
		st: state.UIState{
			Items:     config.Values(b),
			WithIcons: b.WithIcons,
			NoColor:   util.NoColor(opts.NoColor),
		},
		keys:    defaultKeys(),
		help:    help.New(),
		bar:     statusbar.NewStatusBar(),
		overlay: helpoverlay.NewHelpOverlay(),
		feed:    opts.Feed,
		copy:    clipboard.WriteAll,
		log:     opts.Log,
	}
}

func (m model) Init() tea.Cmd {
	if m.feed != nil {
		return waitEntry(m.feed)
	}
	return nil
}

// Update handles all gallery interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.st = state.MoveUp(m.st)
		case key.Matches(msg, m.keys.Down):
			m.st = state.MoveDown(m.st)
		case key.Matches(msg, m.keys.Icons):
			m.st = state.ToggleIcons(m.st)
		case key.Matches(msg, m.keys.Help):
			m.st = state.ToggleHelp(m.st)
		case key.Matches(msg, m.keys.Dismiss):
			m.dismissSelected()
		case key.Matches(msg, m.keys.Copy):
			m.copySelected()
		}

	case entryMsg:
		e := config.Entry(msg)
		if prev, ok := m.entries[e.Message]; ok && prev != e {
			if memo := m.memos[e.Message]; memo != nil {
				memo.Reset()
			}
		}
		m.entries[e.Message] = e
		m.st = state.Upsert(m.st, e.Value())
		m.log.V(1).Info("feed update", "status", e.Status, "message", e.Message)
		return m, waitEntry(m.feed)

	case feedClosedMsg:
		m.st = state.SetNotice(m.st, "Feed closed")

	case tea.WindowSizeMsg:
		m.st = state.Resize(m.st, msg.Width)
		m.help.Width = msg.Width
	}
	return m, nil
}

// chip builds the chip at index i through its memo.
func (m *model) chip(i int, onClose func()) chips.Chip {
	v := m.st.Items[i]
	memo := m.memos[v.Message]
	if memo == nil {
		memo = &chips.Memo{}
		m.memos[v.Message] = memo
	}
	return memo.Build(v, board.ChipOptions(m.board, m.entries[v.Message], m.st.WithIcons, onClose))
}

// dismissSelected fires the selected chip's own dismiss action.
func (m *model) dismissSelected() {
	if _, ok := m.st.Selected(); !ok {
		return
	}
	idx := m.st.Cursor
	c := m.chip(idx, func() { m.st = state.Dismiss(m.st, idx) })
	if !c.Dismissible() {
		m.st = state.SetNotice(m.st, "Chips on this board are not dismissible")
		return
	}
	m.log.V(1).Info("dismiss", "message", c.Label)
	c.OnDelete()
}

func (m *model) copySelected() {
	v, ok := m.st.Selected()
	if !ok {
		return
	}
	if err := m.copy(v.Message); err != nil {
		m.log.Error(err, "clipboard write failed")
		m.st = state.SetNotice(m.st, "Copy failed: "+err.Error())
		return
	}
	m.st = state.SetNotice(m.st, "Copied message")
}

// ===== Views =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	selStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "213"}).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	var b strings.Builder
	title := m.board.Title
	if title == "" {
		title = "Status board"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	if len(m.st.Items) == 0 {
		b.WriteString(faintStyle.Render("No statuses.") + "\n")
	}
	for i := range m.st.Items {
		c := m.chip(i, func() {})
		cursor := "  "
		if i == m.st.Cursor {
			cursor = selStyle.Render("> ")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cursor, chips.Render(c, m.st.NoColor)) + "\n")
	}
	b.WriteString("\n" + faintStyle.Render(m.bar.View(m.st)) + "\n")
	if m.st.ShowHelp {
		b.WriteString("\n" + m.overlay.View(m.st))
	} else {
		b.WriteString(m.help.View(m.keys) + "\n")
	}
	return b.String()
}
