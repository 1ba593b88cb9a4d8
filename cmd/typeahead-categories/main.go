// Command typeahead-categories shows the widget with a custom fetch
// strategy (category-filtered search), a custom renderer and selection
// writing the label instead of the id into the input.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/typeahead"
	"github.com/llehouerou/typeahead/internal/ui/render"
	"github.com/llehouerou/typeahead/internal/ui/styles"
	"github.com/llehouerou/typeahead/mockdata"
)

const widgetTop = 3 // title + category line + blank line

var titleStyle = lipgloss.NewStyle().Bold(true)

// categoriesMsg delivers the distinct categories at startup.
type categoriesMsg struct {
	categories []string
	err        error
}

type model struct {
	ta         typeahead.Model[mockdata.SearchItem]
	categories []string
	active     int // index into categories, -1 = all

	// filter is read from the fetch goroutine; atomic because a fetch
	// may be in flight while tab changes the active category.
	filter *atomic.Value

	selected string
	width    int
}

func categoryFetch(filter *atomic.Value) typeahead.FetchFunc[mockdata.SearchItem] {
	return func(ctx context.Context, query string, limit int) ([]mockdata.SearchItem, error) {
		items, err := mockdata.SearchItems(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		category, _ := filter.Load().(string)
		if category == "" {
			return items, nil
		}
		var out []mockdata.SearchItem
		for _, item := range items {
			if item.Category == category {
				out = append(out, item)
			}
		}
		return out, nil
	}
}

// renderItem is a custom renderer: label plus description, category as
// the detail column.
func renderItem(item mockdata.SearchItem, highlighted bool, width int) string {
	text := item.Label
	if item.Description != "" {
		text += " · " + item.Description
	}

	if highlighted {
		line := render.Row(render.Truncate(text, width-2-len(item.Category)-1), item.Category, width-2)
		return styles.T().S().Highlight.Render("▸ " + line)
	}
	left := "  " + styles.T().S().Base.Render(render.Truncate(text, width-2-len(item.Category)-1))
	return render.Row(left, styles.T().S().Subtle.Render(item.Category), width)
}

func initialModel() model {
	filter := &atomic.Value{}
	filter.Store("")

	ta := typeahead.New(typeahead.Config[mockdata.SearchItem]{
		Fetch:    categoryFetch(filter),
		Renderer: renderItem,
		// This integration writes the label, not the id.
		SelectionText: func(item mockdata.SearchItem) string { return item.Label },
		Placeholder:   "Search by name or description...",
		Label:         "Catalog search",
	})
	ta.SetOrigin(0, widgetTop)

	return model{ta: ta, active: -1, filter: filter}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.ta.Init(), func() tea.Msg {
		categories, err := mockdata.GetCategories(context.Background())
		return categoriesMsg{categories: categories, err: err}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.ta.SetWidth(min(msg.Width, 70))
		return m, nil

	case categoriesMsg:
		if msg.err == nil {
			m.categories = msg.categories
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.cycleCategory()
			return m, nil
		}

	case typeahead.SelectedMsg[mockdata.SearchItem]:
		m.selected = msg.Item.Label
		return m, nil
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *model) cycleCategory() {
	if len(m.categories) == 0 {
		return
	}
	m.active++
	if m.active >= len(m.categories) {
		m.active = -1
	}
	if m.active < 0 {
		m.filter.Store("")
	} else {
		m.filter.Store(m.categories[m.active])
	}
}

func (m model) categoryLine() string {
	parts := make([]string, 0, len(m.categories)+1)
	mark := func(label string, active bool) string {
		if active {
			return styles.T().S().Accent.Render("[" + label + "]")
		}
		return styles.T().S().Subtle.Render(label)
	}
	parts = append(parts, mark("all", m.active < 0))
	for i, c := range m.categories {
		parts = append(parts, mark(c, i == m.active))
	}
	return strings.Join(parts, " ")
}

func (m model) View() string {
	view := titleStyle.Render("typeahead categories demo") + "\n"
	view += m.categoryLine() + "\n\n"
	view += m.ta.View() + "\n\n"

	if m.selected != "" {
		view += "selected: " + m.selected + "\n"
	}
	view += lipgloss.NewStyle().Faint(true).
		Render("tab category · ↑/↓ navigate · enter select · ctrl+c quit")
	return view
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
