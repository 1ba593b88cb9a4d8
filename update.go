package typeahead

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// errGeneric is the only failure text the widget ever shows. The causal
// error goes to the OnError callback, not the screen.
const errGeneric = "Something went wrong. Try again."

// Update implements tea.Model.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case debounceMsg:
		return m.handleDebounce(msg)
	case fetchResultMsg[T]:
		return m.handleFetchResult(msg)
	}
	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}

	switch msg.String() {
	case "down":
		// -1 -> 0, then saturate at the last result. No wrap.
		if m.open && m.highlight < len(m.results)-1 {
			m.highlight++
		}
		return m, nil

	case "up":
		// 0 -> -1 (no highlight), no-op below that.
		if m.open && m.highlight >= 0 {
			m.highlight--
		}
		return m, nil

	case "enter":
		return m.commit()

	case "esc":
		if m.open {
			m.dismiss()
		}
		return m, nil

	case "ctrl+u":
		if m.input.Value() != "" {
			m.clear()
		}
		return m, nil
	}

	// Everything else belongs to the text input.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.queueFetch())
	}
	return m, cmd
}

// queueFetch schedules a debounce tick for the current keystroke,
// superseding any pending tick and any in-flight fetch.
func (m *Model[T]) queueFetch() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.cfg.DebounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m Model[T]) handleDebounce(msg debounceMsg) (Model[T], tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil // a newer keystroke superseded this tick
	}

	query := m.input.Value()
	if len([]rune(strings.TrimSpace(query))) < m.cfg.MinQueryLength {
		// Fast local path: nothing to search for.
		m.results = nil
		m.open = false
		m.highlight = -1
		m.loading = false
		m.searched = false
		m.errText = ""
		return m, nil
	}

	if m.cfg.Fetch == nil {
		return m, nil
	}

	m.loading = true
	m.errText = ""

	seq := m.seq
	fetch := m.cfg.Fetch
	limit := m.cfg.MaxResults
	return m, func() tea.Msg {
		items, err := fetch(context.Background(), query, limit)
		return fetchResultMsg[T]{seq: seq, items: items, err: err}
	}
}

func (m Model[T]) handleFetchResult(msg fetchResultMsg[T]) (Model[T], tea.Cmd) {
	if msg.seq != m.seq {
		return m, nil // stale: the query changed while this was in flight
	}

	m.loading = false

	if msg.err != nil {
		m.results = nil
		m.open = false
		m.highlight = -1
		m.searched = false
		m.errText = errGeneric
		if m.cfg.OnError != nil {
			m.cfg.OnError(msg.err)
		}
		return m, nil
	}

	items := msg.items
	if len(items) > m.cfg.MaxResults {
		items = items[:m.cfg.MaxResults]
	}
	m.results = items
	m.highlight = -1
	m.searched = true
	m.errText = ""
	m.open = len(items) > 0 && strings.TrimSpace(m.input.Value()) != ""
	return m, nil
}

// commit selects the highlighted result: close, clear results, write
// the selection text into the input and notify the integrator.
func (m Model[T]) commit() (Model[T], tea.Cmd) {
	if !m.open || m.highlight < 0 || m.highlight >= len(m.results) {
		return m, nil
	}

	item := m.results[m.highlight]

	m.seq++ // a pending tick or late fetch must not reopen the list
	m.input.SetValue(m.cfg.SelectionText(item))
	m.input.CursorEnd()
	m.results = nil
	m.open = false
	m.highlight = -1
	m.loading = false
	m.searched = false
	m.errText = ""

	if m.cfg.OnSelect != nil {
		m.cfg.OnSelect(item)
	}
	return m, func() tea.Msg { return SelectedMsg[T]{Item: item} }
}

// dismiss closes the list without touching the query (Escape, outside
// click).
func (m *Model[T]) dismiss() {
	m.results = nil
	m.open = false
	m.highlight = -1
	m.searched = false
}

// clear is the explicit clear control: empty query, closed list, input
// keeps focus.
func (m *Model[T]) clear() {
	m.seq++
	m.input.SetValue("")
	m.dismiss()
	m.loading = false
	m.errText = ""
}

func (m Model[T]) handleMouse(msg tea.MouseMsg) (Model[T], tea.Cmd) {
	if m.cfg.Disabled {
		return m, nil
	}

	idx, onList := m.hitTest(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		// Hover shares the highlight variable with the arrow keys.
		if m.open && onList {
			m.highlight = idx
		}

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case m.open && onList:
			m.highlight = idx
			return m.commit()
		case m.open && !m.contains(msg.X, msg.Y):
			m.dismiss()
		}
	}
	return m, nil
}

// hitTest maps a screen coordinate to a result row.
func (m Model[T]) hitTest(x, y int) (int, bool) {
	if !m.open || x < m.originX || x >= m.originX+m.width {
		return 0, false
	}
	idx := y - m.originY - m.headerHeight()
	if idx < 0 || idx >= len(m.results) {
		return 0, false
	}
	return idx, true
}

// contains reports whether the coordinate falls anywhere on the widget,
// input row and label included.
func (m Model[T]) contains(x, y int) bool {
	if x < m.originX || x >= m.originX+m.width {
		return false
	}
	return y >= m.originY && y < m.originY+m.viewHeight()
}

// headerHeight is the number of lines above the first result row.
func (m Model[T]) headerHeight() int {
	if m.cfg.Label != "" {
		return 2
	}
	return 1
}

// viewHeight is the total number of lines View currently renders.
func (m Model[T]) viewHeight() int {
	h := m.headerHeight()
	switch {
	case m.errText != "":
		h++
	case m.open:
		h += len(m.results)
	case m.loading:
		h++
	case m.noResults():
		h++
	}
	return h
}
