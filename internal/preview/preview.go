// SPDX-License-Identifier: Unlicense OR MIT

// Package preview runs the keyboard in a terminal. A simulated text
// field plays the focused input item and the bottom of the terminal
// plays the keyboard window.
package preview

import (
	"encoding/json"
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openvirtualkeyboard/ovk/io/event"
	"github.com/openvirtualkeyboard/ovk/layouts"
	"github.com/openvirtualkeyboard/ovk/positioner"
)

const (
	frameInterval = time.Second / 60
	logLines      = 4
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	fieldStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	focusStyle    = fieldStyle.BorderForeground(lipgloss.Color("12"))
	keyboardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	keyStyle      = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("236"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

type frameMsg time.Time

// Model is the bubbletea model of the preview.
type Model struct {
	provider *layouts.Provider
	pos      *positioner.Positioner
	screen   *terminal
	field    *field
	window   *keyboardWindow
	category layouts.Category
	focused  bool
	animate  bool
	hostShow bool
	ticking  bool
	log      []string
}

// New returns a preview of the layouts of p. The options configure
// the keyboard positioner.
func New(p *layouts.Provider, options ...positioner.Option) *Model {
	screen := &terminal{bounds: image.Rect(0, 0, 80, 24)}
	m := &Model{
		provider: p,
		screen:   screen,
		field:    &field{screen: screen, alive: true},
		window:   &keyboardWindow{},
		hostShow: true,
	}
	m.pos = positioner.New(m.window, display{screen}, options...)
	m.animate = m.pos.AnimationEnabled()
	p.Subscribe(m.providerEvent)
	m.pos.Subscribe(m.positionerEvent)
	m.pos.SetKeyboard(pageKeyboard{m})
	m.pos.UpdateFocusItem(m.field)
	return m
}

// Positioner returns the keyboard positioner.
func (m *Model) Positioner() *positioner.Positioner {
	return m.pos
}

// Category returns the displayed category.
func (m *Model) Category() layouts.Category {
	return m.category
}

// Focused reports whether the simulated field has focus.
func (m *Model) Focused() bool {
	return m.focused
}

// Log returns the most recent events, oldest first.
func (m *Model) Log() []string {
	return m.log
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.bounds = image.Rect(0, 0, msg.Width, msg.Height)
		m.field.subs.Emit(positioner.ScreenEvent{Screen: m.screen})
	case frameMsg:
		m.ticking = false
		m.pos.Frame(time.Time(msg))
	case tea.KeyMsg:
		if quit := m.key(msg.String()); quit {
			return m, tea.Quit
		}
	}
	return m, m.tick()
}

func (m *Model) key(k string) (quit bool) {
	switch k {
	case "q", "ctrl+c":
		return true
	case "f":
		m.SetFocused(!m.focused)
	case "tab":
		m.category = layouts.Category((int(m.category) + 1) % layouts.NumCategories)
		m.relayout()
	case "n":
		m.provider.IncrementPage(m.category)
		m.relayout()
	case "r":
		m.provider.Reload()
		m.relayout()
	case "right", "l":
		m.cycleLocale(1)
	case "left", "h":
		m.cycleLocale(-1)
	case "a":
		m.animate = !m.animate
		m.pos.EnableAnimation(m.animate)
	case "w":
		m.hostShow = !m.hostShow
		m.field.subs.Emit(positioner.VisibilityEvent{Visible: m.hostShow})
	case "x":
		// The field goes away while it may still be focused.
		m.field.alive = false
		m.field.subs.Emit(positioner.ScreenEvent{Screen: m.screen})
		m.SetFocused(false)
	}
	return false
}

// SetFocused gives or takes focus from the simulated field, showing or
// hiding the keyboard.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
	if !focused {
		m.pos.Hide()
		return
	}
	if !m.field.alive {
		m.field = &field{screen: m.screen, alive: true}
	}
	m.pos.UpdateFocusItem(m.field)
	m.pos.Show()
}

func (m *Model) cycleLocale(delta int) {
	n := m.provider.LayoutsCount()
	if n == 0 {
		return
	}
	i := m.provider.SelectedIndex()
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	m.provider.SetSelectedIndex(i)
	m.relayout()
}

// relayout refits the keyboard window to the current page.
func (m *Model) relayout() {
	m.pos.SetKeyboard(pageKeyboard{m})
}

func (m *Model) tick() tea.Cmd {
	if !m.pos.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) providerEvent(e event.Event) {
	switch e := e.(type) {
	case layouts.CountEvent:
		m.logf("layouts: %d", e.Count)
	case layouts.SelectedLayoutEvent:
		m.logf("layout: %s", e.Locale)
	case layouts.PageEvent:
		m.logf("%s: page %d", e.Category, e.Page)
	}
}

func (m *Model) positionerEvent(e event.Event) {
	if e, ok := e.(positioner.StateEvent); ok {
		m.logf("keyboard: %s", e.State)
	}
}

func (m *Model) logf(format string, args ...interface{}) {
	m.log = append(m.log, fmt.Sprintf(format, args...))
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ovk preview"))
	b.WriteString("\n\n")

	style := fieldStyle
	if m.focused {
		style = focusStyle
	}
	b.WriteString(style.Render("text field"))
	b.WriteString("\n")

	locale, _ := m.provider.SelectedLocale()
	v := m.provider.View(m.category)
	fmt.Fprintf(&b, "layout %s (%d/%d)  %s page %d/%d  keyboard %s %3.0f%%\n",
		locale, m.provider.SelectedIndex()+1, m.provider.LayoutsCount(),
		m.category, v.Cursor()+1, v.PageCount(),
		m.pos.State(), m.pos.Progress()*100)
	b.WriteString(dimStyle.Render("f focus  tab category  n page  r reload  ←/→ layout  a animation  w host  x kill field  q quit"))
	b.WriteString("\n")
	for _, l := range m.log {
		b.WriteString(dimStyle.Render(l))
		b.WriteString("\n")
	}

	if mask := m.pos.Mask(); !mask.Empty() {
		lines := strings.Split(keyboardStyle.Render(renderPage(v.CurrentPage())), "\n")
		if n := mask.Dy(); n < len(lines) {
			lines = lines[:n]
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	return b.String()
}

// renderPage draws a page one record per line. Records that are lists
// of strings are drawn as keys; other records are shown as JSON.
func renderPage(p layouts.Page) string {
	if len(p) == 0 {
		return dimStyle.Render("(empty)")
	}
	rows := make([]string, len(p))
	for i, rec := range p {
		var keys []string
		if err := json.Unmarshal(rec, &keys); err != nil {
			rows[i] = string(rec)
			continue
		}
		cells := make([]string, len(keys))
		for j, k := range keys {
			cells[j] = keyStyle.Render(k)
		}
		rows[i] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "\n")
}
