package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// StationPickerModel is the bubbletea model for interactive station selection.
// Typing narrows the list to stations containing the typed text.
type StationPickerModel struct {
	Title    string
	Stations []string
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Selected string
	Canceled bool
}

// NewStationPickerModel creates a picker over stations, shown in the given order.
func NewStationPickerModel(title string, stations []string) StationPickerModel {
	return StationPickerModel{
		Title:    title,
		Stations: stations,
		Height:   10,
	}
}

// visible returns the stations matching the current filter.
func (m StationPickerModel) visible() []string {
	if m.Filter == "" {
		return m.Stations
	}
	var out []string
	for _, s := range m.Stations {
		if strings.Contains(s, m.Filter) {
			out = append(out, s)
		}
	}
	return out
}

func (m StationPickerModel) Init() tea.Cmd {
	return nil
}

func (m StationPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Canceled = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case tea.KeyDown:
			if m.Cursor < len(m.visible())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case tea.KeyEnter:
			items := m.visible()
			if len(items) == 0 {
				return m, nil
			}
			m.Selected = items[m.Cursor]
			return m, tea.Quit
		case tea.KeyBackspace:
			if m.Filter != "" {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.Cursor, m.Offset = 0, 0
			}
		case tea.KeyRunes, tea.KeySpace:
			m.Filter += strings.ToLower(string(msg.Runes))
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m StationPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("type to filter  ↑/↓ navigate  ⏎ select  esc quit"))
	b.WriteString("\n")
	if m.Filter != "" {
		b.WriteString(listDimStyle.Render("filter: ") + StyleValue.Render(m.Filter))
	}
	b.WriteString("\n\n")

	items := m.visible()
	if len(items) == 0 {
		b.WriteString(listDimStyle.Render("  no matching station"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(items))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + items[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + items[i]))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(items))))

	return b.String()
}

// pickStation runs the picker and returns the chosen station.
// ok is false when the user quit without choosing.
func pickStation(title string, stations []string, opts ...tea.ProgramOption) (station string, ok bool, err error) {
	final, err := tea.NewProgram(NewStationPickerModel(title, stations), opts...).Run()
	if err != nil {
		return "", false, err
	}

	fm, isPicker := final.(StationPickerModel)
	if !isPicker || fm.Canceled || fm.Selected == "" {
		return "", false, nil
	}
	return fm.Selected, true, nil
}
