// Package tui is the interactive terminal frontend for the search session.
// It renders the dropdown state machine (results, suggestions, history) and
// translates key presses into session controller calls.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/junetapa-juncheol/portfolio-search/internal/domain/index"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
	"github.com/junetapa-juncheol/portfolio-search/internal/session"
)

// Sentinels used to carry match spans through lipgloss rendering. They are
// control characters, so they can never collide with catalog text.
const (
	markOpen  = "\x01"
	markClose = "\x02"
)

// Model is the bubbletea model for the interactive search session.
type Model struct {
	ctrl   *session.Controller
	bridge *bridge
	styles *Styles

	input     textinput.Model
	spin      spinner.Model
	snap      session.Snapshot
	status    string
	highlight bool
	width     int
	quitting  bool
}

// New builds the interactive model. The caller owns the controller's
// engine and history; the model owns only the view state.
func New(newController func(session.Renderer, ports.Navigator) *session.Controller, highlight bool) *Model {
	b := newBridge()

	ti := textinput.New()
	ti.Placeholder = "검색어를 입력하세요..."
	ti.Prompt = "🔍 "
	ti.Focus()
	ti.CharLimit = 128

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bridge:    b,
		styles:    NewStyles(),
		input:     ti,
		spin:      sp,
		highlight: highlight,
		width:     80,
	}
	m.ctrl = newController(b, b)
	m.snap = m.ctrl.Snapshot()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.ctrl.Focus()
	return tea.Batch(textinput.Blink, m.spin.Tick, m.bridge.wait())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case snapshotMsg:
		m.snap = msg.snap
		return m, m.bridge.wait()

	case navMsg:
		m.status = navStatus(msg)
		return m, m.bridge.wait()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		m.ctrl.Close()
		return m, tea.Quit

	case "esc":
		if !m.snap.ShowDropdown && m.input.Value() == "" {
			m.quitting = true
			m.ctrl.Close()
			return m, tea.Quit
		}
		m.ctrl.Escape()
		return m, nil

	case "down":
		m.ctrl.MoveSelection(1)
		return m, nil

	case "up":
		m.ctrl.MoveSelection(-1)
		return m, nil

	case "enter":
		m.ctrl.SelectCurrent()
		return m, nil

	case "tab":
		m.ctrl.SelectHighlighted()
		return m, nil

	case "ctrl+l":
		m.ctrl.ClearHistory()
		m.status = "검색 기록이 삭제되었습니다"
		return m, nil

	case "ctrl+f":
		m.cycleCategory()
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.status = ""
		m.ctrl.Input(v)
	}
	return m, cmd
}

// categoryCycle is the ctrl+f rotation order for the category filter.
var categoryCycle = []string{
	ports.FilterAll,
	string(ports.CategoryAbout),
	string(ports.CategoryPortfolio),
	string(ports.CategoryBlog),
	string(ports.CategoryMusic),
}

func (m *Model) cycleCategory() {
	filters := m.snap.Filters
	next := 0
	for i, c := range categoryCycle {
		if filters.Category == c {
			next = (i + 1) % len(categoryCycle)
			break
		}
	}
	filters.Category = categoryCycle[next]
	m.status = "분류: " + filters.Category
	m.ctrl.SetFilters(filters)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render("portfolio search"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.snap.ShowDropdown {
		b.WriteString(m.styles.Dropdown.Render(m.dropdown()))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Dim.Render("↑/↓ 이동 · enter 선택 · tab 완성 · ctrl+f 분류 · esc 닫기 · ctrl+c 종료"))
	return b.String()
}

// dropdown renders the dropdown body for the current snapshot: loading,
// failure, history, results, or the empty state with suggestions.
func (m *Model) dropdown() string {
	s := m.snap

	if s.IsSearching {
		return m.spin.View() + " 검색 중..."
	}
	if s.Failed {
		return m.styles.Error.Render("검색 중 오류가 발생했습니다")
	}

	if s.ShowHistory {
		return m.historyView(s.History)
	}

	if len(s.Results) == 0 {
		var b strings.Builder
		b.WriteString(m.styles.Dim.Render(fmt.Sprintf("'%s'에 대한 결과가 없습니다", s.Query)))
		if len(s.Suggestions) > 0 {
			b.WriteString("\n\n")
			b.WriteString(m.styles.SectionHead.Render("추천 검색어"))
			for _, sg := range s.Suggestions {
				b.WriteString("\n  " + sg)
			}
		}
		return b.String()
	}

	var b strings.Builder
	for i, r := range s.Results {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.resultLine(r, i == s.SelectedIndex, s.Query))
	}
	return b.String()
}

func (m *Model) historyView(entries []ports.HistoryEntry) string {
	if len(entries) == 0 {
		return m.styles.Dim.Render("최근 검색 기록이 없습니다")
	}
	var b strings.Builder
	b.WriteString(m.styles.SectionHead.Render("최근 검색"))
	for _, e := range entries {
		b.WriteString("\n  " + e.Query)
		if e.Title != "" {
			b.WriteString(m.styles.Dim.Render(" → " + e.Title))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Dim.Render("ctrl+l 기록 삭제"))
	return b.String()
}

func (m *Model) resultLine(r ports.SearchResult, selected bool, query string) string {
	title := r.Title
	snippet := index.TruncateContent(r.Content, 80)
	if m.highlight && !selected {
		title = m.styleMatches(index.Highlight(title, query, markOpen, markClose))
		snippet = m.styleMatches(index.Highlight(snippet, query, markOpen, markClose))
	}

	label := m.styles.TypeLabel.Render("[" + string(r.Type) + "]")
	if r.IsRemote {
		label += m.styles.Remote.Render(" ⇡")
	}

	line := fmt.Sprintf("%s %s", label, title)
	if selected {
		line = m.styles.Selected.Render("▸ " + fmt.Sprintf("[%s] %s", r.Type, r.Title))
	}
	if snippet != "" {
		line += "\n    " + m.styles.Snippet.Render(snippet)
	}
	return line
}

// styleMatches converts sentinel-delimited spans into styled text.
func (m *Model) styleMatches(marked string) string {
	var b strings.Builder
	for {
		open := strings.Index(marked, markOpen)
		if open < 0 {
			b.WriteString(marked)
			return b.String()
		}
		rest := marked[open+len(markOpen):]
		end := strings.Index(rest, markClose)
		if end < 0 {
			b.WriteString(marked[:open])
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(marked[:open])
		b.WriteString(m.styles.Match.Render(rest[:end]))
		marked = rest[end+len(markClose):]
	}
}

func navStatus(msg navMsg) string {
	switch msg.kind {
	case ports.NavExternal:
		return "외부 링크: " + msg.url
	case ports.NavAnchor:
		return "이동: " + msg.url
	default:
		return "이동: " + msg.url
	}
}

// Run starts the interactive session and blocks until it exits.
func Run(newController func(session.Renderer, ports.Navigator) *session.Controller, highlight bool) error {
	p := tea.NewProgram(New(newController, highlight))
	_, err := p.Run()
	return err
}
