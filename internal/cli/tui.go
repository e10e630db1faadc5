package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/doghouse/pkg/datadog"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// DashboardListModel - Interactive dashboard selection
// =============================================================================

// DashboardListModel is the bubbletea model for interactive dashboard selection.
type DashboardListModel struct {
	Dashboards []datadog.Summary
	Cursor     int
	Selected   *datadog.Summary
	Height     int
	Offset     int
}

// NewDashboardListModel creates a new dashboard list model.
func NewDashboardListModel(dashboards []datadog.Summary) DashboardListModel {
	return DashboardListModel{
		Dashboards: dashboards,
		Cursor:     0,
		Height:     15,
		Offset:     0,
	}
}

func (m DashboardListModel) Init() tea.Cmd {
	return nil
}

func (m DashboardListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Dashboards)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			d := m.Dashboards[m.Cursor]
			m.Selected = &d
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DashboardListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dashboard"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Dashboards) {
		end = len(m.Dashboards)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		d := m.Dashboards[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		layout := d.LayoutType
		if layout == "" {
			layout = "—"
		}

		rows = append(rows, []string{cursor, d.Title, d.ID, layout, formatRelativeTime(d.ModifiedAt)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Title", "ID", "Layout", "Modified").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Dashboards) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col == 3 || col == 4 {
				if isCurrent {
					base = base.Foreground(colorGray)
				} else {
					base = base.Foreground(colorDim)
				}
			}

			if isCurrent {
				if col != 3 && col != 4 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			if col == 1 {
				return base.Foreground(colorWhite)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Dashboards))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// pickDashboard lists all dashboards and runs the interactive picker.
// It returns nil with no error when there is nothing to pick or the user
// backs out.
func pickDashboard(ctx context.Context, client *datadog.Client, refresh bool) (*datadog.Summary, error) {
	spinner := newSpinnerWithContext(ctx, "Listing dashboards...")
	spinner.Start()
	dashboards, err := client.List(ctx, refresh)
	if err != nil {
		spinner.StopWithError("List failed")
		return nil, err
	}
	spinner.Stop()

	if len(dashboards) == 0 {
		printInfo("No dashboards found")
		return nil, nil
	}

	model := NewDashboardListModel(dashboards)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	return final.(DashboardListModel).Selected, nil
}

func formatRelativeTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}

	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
