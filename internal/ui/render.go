package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todoboard/internal/form"
	"github.com/nibzard/todoboard/internal/todo"
)

const (
	boardTitle = "Todo List"
	gutter     = 2
	minCard    = 14
	maxModal   = 72
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	buttonStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235"))
	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("62")).
				Bold(true)
	primaryButtonStyle = buttonStyle.Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("62"))
	cardTitleStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle        = lipgloss.NewStyle().Faint(true)
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	modalStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))
)

func (m *Model) viewBoard() string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, headingStyle.Render(boardTitle)))
	b.WriteString("\n\n")
	b.WriteString(primaryButtonStyle.Render("+ Create Task"))
	b.WriteString("\n\n")

	tasks := m.ctrl.Store().Tasks()
	if len(tasks) == 0 {
		b.WriteString(faintStyle.Render("No tasks yet. Press n to create one."))
		b.WriteString("\n")
	} else {
		b.WriteString(renderGrid(tasks, m.columns, m.width, m.cursor))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.board))
	return b.String()
}

// renderGrid lays tasks out row by row, at most columns cards per row.
// Fewer columns are used when the configured count would not fit width.
func renderGrid(tasks []todo.Task, columns, width, cursor int) string {
	columns = gridColumns(columns, width)
	cw := cardWidth(columns, width)

	rows := make([]string, 0, (len(tasks)+columns-1)/columns)
	for start := 0; start < len(tasks); start += columns {
		end := start + columns
		if end > len(tasks) {
			end = len(tasks)
		}
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", gutter))
			}
			cells = append(cells, renderCard(tasks[i], cw, i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// gridColumns is the number of cards per row that fit width with every card
// at least minCard wide. It never exceeds columns and is at least 1.
func gridColumns(columns, width int) int {
	if columns <= 0 {
		columns = defaultColumns
	}
	fit := (width + gutter) / (minCard + gutter)
	if fit < 1 {
		fit = 1
	}
	if columns > fit {
		return fit
	}
	return columns
}

// cardWidth is the outer width of one card, border included.
func cardWidth(columns, width int) int {
	w := (width - gutter*(columns-1)) / columns
	if w < minCard {
		return minCard
	}
	return w
}

func renderCard(task todo.Task, width int, selected bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	body := strings.Join([]string{
		cardTitleStyle.Render(task.Title),
		"",
		task.Description,
		"",
		faintStyle.Render("e edit · d delete"),
	}, "\n")
	return style.Width(width - 2).Render(body)
}

func modalWidth(screenWidth int) int {
	w := screenWidth - 8
	if w > maxModal {
		w = maxModal
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (m *Model) viewModal() string {
	heading := "Create Task"
	if m.ctrl.Mode() == form.Editing {
		heading = "Edit Task"
	}

	ok := buttonStyle.Render("OK")
	cancel := buttonStyle.Render("Cancel")
	switch m.focus {
	case focusOK:
		ok = activeButtonStyle.Render("OK")
	case focusCancel:
		cancel = activeButtonStyle.Render("Cancel")
	}
	controls := lipgloss.JoinHorizontal(lipgloss.Top, cancel, " ", ok)

	parts := []string{
		lipgloss.NewStyle().Bold(true).Render(heading),
		"",
		m.title.View(),
		"",
		m.desc.View(),
		"",
		controls,
	}
	if m.status != "" {
		parts = append(parts, "", statusStyle.Render(m.status))
	}
	parts = append(parts, "", m.help.View(m.form))

	box := modalStyle.Width(modalWidth(m.width) - 2).Render(strings.Join(parts, "\n"))
	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}
