// ABOUTME: Interactive bubbletea board of roster sessions
// ABOUTME: Lays out session blocks in a grid with keyboard navigation and reload

package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/markalston/campboard/internal/branding"
	"github.com/markalston/campboard/internal/roster"
	"github.com/markalston/campboard/internal/tui/styles"
	"github.com/markalston/campboard/internal/tui/widgets"
	"github.com/markalston/campboard/internal/utilization"
)

const (
	blockWidth   = 40
	blockSpacing = 2
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reload key.Binding
	Dark   key.Binding
	Quit   key.Binding
}

// ShortHelp lists quit first so narrow terminals keep it when help truncates
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Up, k.Down, k.Reload, k.Dark}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reload, k.Dark, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Dark:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// rosterLoadedMsg is sent when the roster file has been read
type rosterLoadedMsg struct {
	roster *roster.Roster
	err    error
}

// Board is the root model for the interactive board
type Board struct {
	branding   branding.Branding
	rosterPath string
	roster     *roster.Roster
	err        error
	cursor     int
	width      int
	dark       bool
	keys       keyMap
	help       help.Model
}

// New creates a board that reads sessions from rosterPath
func New(b branding.Branding, rosterPath string, dark bool) *Board {
	return &Board{
		branding:   b,
		rosterPath: rosterPath,
		dark:       dark,
		width:      blockWidth,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model
func (b *Board) Init() tea.Cmd {
	return b.loadRoster()
}

func (b *Board) loadRoster() tea.Cmd {
	path := b.rosterPath
	return func() tea.Msg {
		r, err := roster.Load(path)
		return rosterLoadedMsg{roster: r, err: err}
	}
}

// Update implements tea.Model
func (b *Board) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.help.Width = msg.Width
		return b, nil

	case rosterLoadedMsg:
		b.err = msg.err
		if msg.err == nil {
			b.roster = msg.roster
			if b.cursor >= b.count() {
				b.cursor = max(0, b.count()-1)
			}
		}
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Reload):
			return b, b.loadRoster()
		case key.Matches(msg, b.keys.Dark):
			b.dark = !b.dark
		case key.Matches(msg, b.keys.Up):
			b.move(-b.columns())
		case key.Matches(msg, b.keys.Down):
			b.move(b.columns())
		case key.Matches(msg, b.keys.Left):
			b.move(-1)
		case key.Matches(msg, b.keys.Right):
			b.move(1)
		}
	}

	return b, nil
}

func (b *Board) count() int {
	if b.roster == nil {
		return 0
	}
	return len(b.roster.Sessions)
}

// columns returns how many blocks fit side by side
func (b *Board) columns() int {
	return max(1, (b.width+blockSpacing)/(blockWidth+blockSpacing))
}

func (b *Board) move(delta int) {
	next := b.cursor + delta
	if next < 0 || next >= b.count() {
		return
	}
	b.cursor = next
}

// Selected returns the session under the cursor
func (b *Board) Selected() (roster.Session, bool) {
	if b.count() == 0 {
		return roster.Session{}, false
	}
	return b.roster.Sessions[b.cursor], true
}

// View implements tea.Model
func (b *Board) View() string {
	sections := []string{widgets.Wordmark(b.branding, branding.SizeLarge, b.dark)}

	switch {
	case b.err != nil:
		sections = append(sections, styles.Error.Render(fmt.Sprintf("Error: %v", b.err)))
	case b.roster == nil:
		sections = append(sections, "Loading roster...")
	case b.count() == 0:
		sections = append(sections, "No sessions in roster.")
	default:
		sections = append(sections, b.summary(), b.grid())
	}

	sections = append(sections, styles.Help.Render(b.help.View(b.keys)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b *Board) summary() string {
	counts := b.roster.Counts()
	var parts []string
	for _, level := range []utilization.Level{utilization.OverCapacity, utilization.High, utilization.Elevated, utilization.Healthy} {
		if n := counts[level]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", widgets.LevelBadge(level), n))
		}
	}
	return strings.Join(parts, "  ")
}

func (b *Board) grid() string {
	cols := b.columns()
	spacer := strings.Repeat(" ", blockSpacing)

	var rows []string
	var row []string
	for i, s := range b.roster.Sessions {
		cfg := widgets.SessionBlockConfig{Width: blockWidth, Selected: i == b.cursor, Dark: b.dark}
		if len(row) > 0 {
			row = append(row, spacer)
		}
		row = append(row, widgets.SessionBlock(s, cfg))
		if (i+1)%cols == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
