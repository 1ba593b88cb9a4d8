package typeahead

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the typeahead widget state. Create it with New and embed it
// in a host model; all mutable state is private to one instance.
type Model[T Item] struct {
	cfg   Config[T]
	input textinput.Model

	results   []T
	highlight int // index into results, -1 = none
	open      bool
	loading   bool
	searched  bool // a fetch for the current query has completed
	errText   string

	// seq invalidates pending debounce ticks and in-flight fetches.
	// Every keystroke bumps it; a tick or fetch result that carries an
	// older value is discarded on arrival.
	seq int

	width            int
	originX, originY int
}

// New creates a typeahead widget from cfg, applying defaults and
// clamping out-of-range values.
func New[T Item](cfg Config[T]) Model[T] {
	cfg.normalize()

	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	return Model[T]{
		cfg:       cfg,
		input:     ti,
		highlight: -1,
		width:     40,
	}
}

// Init implements tea.Model.
func (m Model[T]) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current query text.
func (m Model[T]) Value() string {
	return m.input.Value()
}

// SetValue replaces the query text without triggering a fetch. Pending
// debounce ticks and in-flight fetches are invalidated.
func (m *Model[T]) SetValue(s string) {
	m.seq++
	m.input.SetValue(s)
	m.input.CursorEnd()
}

// Results returns the current result set.
func (m Model[T]) Results() []T {
	return m.results
}

// Highlighted returns the highlighted result index, or -1 for none.
func (m Model[T]) Highlighted() int {
	return m.highlight
}

// Expanded reports whether the result list is open.
func (m Model[T]) Expanded() bool {
	return m.open
}

// Loading reports whether a fetch is in flight.
func (m Model[T]) Loading() bool {
	return m.loading
}

// ErrorText returns the user-facing failure message, or "" if the last
// fetch succeeded.
func (m Model[T]) ErrorText() string {
	return m.errText
}

// Disabled reports whether the widget ignores interaction.
func (m Model[T]) Disabled() bool {
	return m.cfg.Disabled
}

// SetDisabled toggles interaction without clearing existing state.
func (m *Model[T]) SetDisabled(disabled bool) {
	m.cfg.Disabled = disabled
}

// Focus gives keyboard focus to the input.
func (m *Model[T]) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus from the input.
func (m *Model[T]) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has keyboard focus.
func (m Model[T]) Focused() bool {
	return m.input.Focused()
}

// SetWidth sets the widget width in cells.
func (m *Model[T]) SetWidth(w int) {
	if w < minWidth {
		w = minWidth
	}
	m.width = w
	m.input.Width = w - lipgloss.Width(m.input.Prompt) - inputReserve
}

// SetOrigin tells the widget where its top-left corner sits on screen,
// for mouse hit-testing. Defaults to (0, 0).
func (m *Model[T]) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Reset clears query, results and error state and invalidates any
// pending debounce tick or in-flight fetch. Call it before discarding
// the widget or when recycling it for a new session.
func (m *Model[T]) Reset() {
	m.seq++
	m.input.SetValue("")
	m.results = nil
	m.open = false
	m.highlight = -1
	m.loading = false
	m.searched = false
	m.errText = ""
}

// StatusLine returns a screen-reader-friendly summary of the widget
// state for hosts that surface textual status.
func (m Model[T]) StatusLine() string {
	var parts []string
	if m.cfg.Label != "" {
		parts = append(parts, m.cfg.Label)
	}
	switch {
	case m.cfg.Disabled:
		parts = append(parts, "disabled")
	case m.errText != "":
		parts = append(parts, m.errText)
	case m.loading:
		parts = append(parts, "searching")
	case m.open:
		n := len(m.results)
		if m.highlight >= 0 {
			parts = append(parts, fmt.Sprintf("%d results, %d of %d highlighted", n, m.highlight+1, n))
		} else {
			parts = append(parts, fmt.Sprintf("%d results", n))
		}
	case m.searched && strings.TrimSpace(m.input.Value()) != "":
		parts = append(parts, "no results")
	default:
		parts = append(parts, "collapsed")
	}
	return strings.Join(parts, ": ")
}
