package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/pascal-host/triangle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Rows are generated synchronously inside Update; lengths beyond this cap
// would stall the event loop for a noticeable time.
const maxInteractiveLen = 4096

type interactiveModel struct {
	err     error
	input   textinput.Model
	row     []uint32
	n       int
	checked bool
	hasRow  bool
}

func runInteractive() error {
	ti := textinput.New()
	ti.Placeholder = "row length"
	ti.CharLimit = 4
	ti.Width = 14
	ti.Focus()

	_, err := tea.NewProgram(interactiveModel{input: ti}, tea.WithAltScreen()).Run()
	return err
}

func (m interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.checked = !m.checked
			if m.hasRow {
				m.compute()
			}
			return m, nil
		case "enter":
			m.compute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) compute() {
	m.err = nil
	m.hasRow = false

	n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
	if err != nil || n < 0 {
		m.err = fmt.Errorf("enter a non-negative integer")
		return
	}
	if n > maxInteractiveLen {
		m.err = fmt.Errorf("length must be at most %d in interactive mode", maxInteractiveLen)
		return
	}
	m.n = n

	if m.checked {
		row, err := triangle.RowChecked(n)
		if err != nil {
			m.err = err
			return
		}
		m.row = row
	} else {
		m.row = triangle.Row(n)
	}
	m.hasRow = true
}

func (m interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("pascalrow"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	mode := "wrapping (uint32)"
	if m.checked {
		mode = "checked (errors on overflow)"
	}
	b.WriteString(modeStyle.Render("mode: " + mode))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(warnStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.hasRow:
		cells := make([]string, len(m.row))
		for i, v := range m.row {
			cells[i] = strconv.FormatUint(uint64(v), 10)
		}
		b.WriteString(cellStyle.Render(strings.Join(cells, " ")))
		b.WriteString("\n")
		if !m.checked && m.n > triangle.MaxLen32 {
			b.WriteString(warnStyle.Render(
				fmt.Sprintf("coefficients wrap past length %d", triangle.MaxLen32)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: compute • tab: toggle overflow mode • esc: quit"))
	b.WriteString("\n")

	return b.String()
}
