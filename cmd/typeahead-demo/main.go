// Command typeahead-demo runs the typeahead widget over the bundled
// mock catalog with the default renderer and selection behavior.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/typeahead"
	"github.com/llehouerou/typeahead/internal/config"
	"github.com/llehouerou/typeahead/mockdata"
)

const widgetTop = 2 // title line + blank line above the widget

var titleStyle = lipgloss.NewStyle().Bold(true)

type model struct {
	ta       typeahead.Model[mockdata.SearchItem]
	selected *mockdata.SearchItem
	width    int
}

func initialModel(cfg *config.Config, logger *log.Logger) model {
	label := cfg.Label
	if label == "" {
		label = "Search the catalog"
	}

	ta := typeahead.New(typeahead.Config[mockdata.SearchItem]{
		Fetch: mockdata.Fetch(),
		OnError: func(err error) {
			logger.Error("fetch failed", "err", err)
		},
		Placeholder:    cfg.Placeholder,
		Label:          label,
		MaxResults:     cfg.MaxResults,
		DebounceDelay:  time.Duration(cfg.DebounceMs) * time.Millisecond,
		MinQueryLength: cfg.MinQueryLength,
	})
	ta.SetOrigin(0, widgetTop)

	return model{ta: ta}
}

func (m model) Init() tea.Cmd {
	return m.ta.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.ta.SetWidth(min(msg.Width, 60))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case typeahead.SelectedMsg[mockdata.SearchItem]:
		item := msg.Item
		m.selected = &item
		return m, nil
	}

	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m model) View() string {
	view := titleStyle.Render("typeahead demo") + "\n\n"
	view += m.ta.View() + "\n\n"

	if m.selected != nil {
		view += fmt.Sprintf("selected: %s (%s)\n", m.selected.Label, m.selected.ID)
	}
	view += lipgloss.NewStyle().Faint(true).
		Render("↑/↓ navigate · enter select · ctrl+u clear · ctrl+c quit")
	return view
}

func newLogger(path string) (*log.Logger, func()) {
	if path == "" {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		// Fall back to a silent logger rather than failing the demo.
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "typeahead",
		ReportTimestamp: true,
	})
	return logger, func() { f.Close() }
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLogger := newLogger(cfg.LogFile)
	defer closeLogger()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.MouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(initialModel(cfg, logger), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
