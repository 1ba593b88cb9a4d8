package typeahead

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/typeahead/internal/ui/render"
	"github.com/llehouerou/typeahead/internal/ui/styles"
)

const (
	minWidth = 20

	// Cells reserved on the input row for the clear affordance and the
	// expanded marker.
	inputReserve = 4

	loadingText   = "Searching…"
	noResultsText = "No results"
)

// View implements tea.Model.
func (m Model[T]) View() string {
	var b strings.Builder

	if m.cfg.Label != "" {
		b.WriteString(styles.T().S().Muted.Render(render.Truncate(m.cfg.Label, m.width)))
		b.WriteByte('\n')
	}

	b.WriteString(m.inputView())

	switch {
	case m.errText != "":
		b.WriteByte('\n')
		b.WriteString(styles.T().S().Error.Render(render.Truncate(m.errText, m.width)))

	case m.open:
		for i, item := range m.results {
			b.WriteByte('\n')
			line := m.cfg.Renderer(item, i == m.highlight, m.width)
			b.WriteString(ansi.Truncate(line, m.width, "…"))
		}

	case m.loading:
		b.WriteByte('\n')
		b.WriteString(styles.T().S().Subtle.Render(loadingText))

	case m.noResults():
		b.WriteByte('\n')
		b.WriteString(styles.T().S().Subtle.Render(noResultsText))
	}

	return b.String()
}

// noResults reports whether the empty state should be shown: the last
// fetch completed with nothing for a non-empty query. Distinct from the
// error state.
func (m Model[T]) noResults() bool {
	return m.searched && len(m.results) == 0 && !m.loading &&
		strings.TrimSpace(m.input.Value()) != ""
}

func (m Model[T]) inputView() string {
	marker := "▸"
	if m.open {
		marker = "▾"
	}
	right := styles.T().S().Subtle.Render(marker)
	if m.input.Value() != "" && !m.cfg.Disabled {
		// Clear affordance, present only when there is something to clear.
		right = styles.T().S().Subtle.Render("✕ ") + styles.T().S().Accent.Render(marker)
	}

	in := m.input.View()
	if m.cfg.Disabled {
		in = styles.T().S().Subtle.Render(m.input.Prompt + m.input.Value())
	}
	return render.Row(in, right, m.width)
}

// DefaultRenderer renders an item as a single line: a pointer prefix
// and inverse style for the highlighted row, display text on the left
// and, when the item provides one, a dimmed detail column on the right.
func DefaultRenderer[T Item](item T, highlighted bool, width int) string {
	text := item.ItemID()
	if d, ok := any(item).(DisplayItem); ok {
		text = d.DisplayText()
	}
	var detail string
	if d, ok := any(item).(DetailItem); ok {
		detail = d.Detail()
	}

	const prefixWidth = 2
	avail := width - prefixWidth
	if detail != "" {
		detail = render.Truncate(detail, avail/2)
		text = render.Truncate(text, avail-lipgloss.Width(detail)-1)
	} else {
		text = render.Truncate(text, avail)
	}

	if highlighted {
		line := text
		if detail != "" {
			line = render.Row(text, detail, avail)
		}
		return styles.T().S().Highlight.Render("▸ " + render.Pad(line, avail))
	}

	left := "  " + styles.T().S().Base.Render(text)
	if detail == "" {
		return left
	}
	return render.Row(left, styles.T().S().Subtle.Render(detail), width)
}
