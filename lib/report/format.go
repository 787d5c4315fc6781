package report

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pescuma/oldtodos/lib/model"
	"github.com/pescuma/oldtodos/lib/utils"
)

const (
	ageWidth = 10
	ellipsis = "..."

	oldDays     = 364
	warningDays = 60
)

var (
	oldStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	freshStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	fileStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	textStyle    = lipgloss.NewStyle().Italic(true)
)

// AgeLabel returns the age in days, colored by severity and padded to the age
// column, or in hours, minutes or seconds when younger than a day.
func AgeLabel(age time.Duration) string {
	days := int64(age / (24 * time.Hour))
	if days > 0 {
		label := fmt.Sprintf("%-*v", ageWidth, fmt.Sprintf("%v days", days))

		switch {
		case days > oldDays:
			return oldStyle.Render(label)
		case days > warningDays:
			return warningStyle.Render(label)
		default:
			return freshStyle.Render(label)
		}
	}

	if hours := int64(age / time.Hour); hours > 0 {
		return fmt.Sprintf("%v hours", hours)
	}

	if minutes := int64(age / time.Minute); minutes > 0 {
		return fmt.Sprintf("%v minutes", minutes)
	}

	return fmt.Sprintf("%v seconds", int64(age/time.Second))
}

// Truncate clips text to width characters, ending it with "..." when clipped.
func Truncate(text string, width int) string {
	runes := []rune(text)

	switch {
	case len(runes) <= width:
		return text
	case width <= len(ellipsis):
		return ellipsis
	default:
		return string(runes[:width-len(ellipsis)]) + ellipsis
	}
}

// FormatTodo renders one todo as a single line.
func FormatTodo(todo *model.Todo, layout *Layout) string {
	age := AgeLabel(todo.Age)
	if todo.AgeDays() <= 0 {
		age = fmt.Sprintf("%-*v", ageWidth, age)
	}

	file := fileStyle.Render(fmt.Sprintf("%-*v", layout.PathWidth, todo.FilenameWithLine()))
	if layout.Hyperlinks {
		file = hyperlink(todo.Path, file)
	}

	return fmt.Sprintf("%v %-*v %v %v",
		age,
		layout.NameWidth, todo.Author,
		file,
		textStyle.Render(Truncate(todo.Text, layout.TextWidth())))
}

// hyperlink wraps text in an OSC 8 link to the file, using the canonical path
// when it can be resolved.
func hyperlink(path string, text string) string {
	target, err := utils.PathCanonical(path)
	if err != nil {
		target = path
	}

	return fmt.Sprintf("\x1b]8;;file://%v\x1b\\%v\x1b]8;;\x1b\\", target, text)
}
