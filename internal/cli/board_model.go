package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/stagehand/internal/app"
	"github.com/alexanderramin/stagehand/internal/cli/formatter"
	"github.com/alexanderramin/stagehand/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	boardShiftDays = 7
	// boardChrome is the number of lines taken by the title and help bar.
	boardChrome = 3
)

type boardLoader func(ctx context.Context, from, to string) (*app.LocationBoardResponse, error)

type boardLoadedMsg struct {
	resp *app.LocationBoardResponse
	err  error
}

type boardKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Prev: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		Next: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardViewportKeyMap scrolls with arrows and page keys only, leaving h/l
// free for window shifts.
func boardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

// boardModel is the interactive location board. The window moves a week at
// a time and every move reloads the board through load.
type boardModel struct {
	load     boardLoader
	from, to string
	dayWidth int
	maxDays  int

	keys     boardKeyMap
	viewport viewport.Model
	board    *app.LocationBoardResponse
	err      error
}

func newBoardModel(load boardLoader, from, to string, dayWidth, maxDays int) *boardModel {
	vp := viewport.New(80, 20)
	vp.KeyMap = boardViewportKeyMap()
	return &boardModel{
		load:     load,
		from:     from,
		to:       to,
		dayWidth: dayWidth,
		maxDays:  maxDays,
		keys:     defaultBoardKeys(),
		viewport: vp,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *boardModel) loadCmd() tea.Cmd {
	load, from, to := m.load, m.from, m.to
	return func() tea.Msg {
		resp, err := load(context.Background(), from, to)
		return boardLoadedMsg{resp: resp, err: err}
	}
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-boardChrome, 1)
		return m, nil

	case boardLoadedMsg:
		m.board, m.err = msg.resp, msg.err
		if m.err == nil && m.from == "" && m.board != nil {
			m.from, m.to = m.board.From, m.board.To
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			return m, m.shift(-boardShiftDays)
		case key.Matches(msg, m.keys.Next):
			return m, m.shift(boardShiftDays)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// shift moves the window by days and reloads. Nothing happens until the
// first load has fixed the window.
func (m *boardModel) shift(days int) tea.Cmd {
	from, err := domain.ParseDateKey(m.from)
	if err != nil {
		return nil
	}
	to, err := domain.ParseDateKey(domain.CoalesceStr(m.to, m.from))
	if err != nil {
		return nil
	}
	m.from = domain.DateKey(from.AddDate(0, 0, days))
	m.to = domain.DateKey(to.AddDate(0, 0, days))
	return m.loadCmd()
}

func (m *boardModel) refresh() {
	if m.err != nil {
		m.viewport.SetContent(formatter.StyleRed.Render("Error: " + m.err.Error()))
		return
	}
	content, err := formatter.FormatBoard(m.board, m.dayWidth, m.maxDays)
	if err != nil {
		content = formatter.StyleRed.Render("Error: " + err.Error())
	}
	m.viewport.SetContent(content)
}

func (m *boardModel) View() string {
	var b strings.Builder
	title := "Location board"
	if m.from != "" {
		title += "  " + formatter.DateSpan(m.from, domain.CoalesceStr(m.to, m.from))
	}
	b.WriteString(formatter.StyleHeader.Render(title) + "\n")
	b.WriteString(m.viewport.View() + "\n")

	bindings := []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Quit}
	help := make([]string, 0, len(bindings)+1)
	for _, k := range bindings {
		h := k.Help()
		help = append(help, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	help = append(help, "↑/↓ scroll")
	b.WriteString(formatter.Dim(strings.Join(help, " · ")))
	return b.String()
}
