package report

import (
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/pescuma/oldtodos/lib/model"
	"github.com/pescuma/oldtodos/lib/utils"
)

const (
	// reservedWidth is kept for the age column and the separators.
	reservedWidth = 30

	minPathWidth     = 15
	defaultNameWidth = 10
	defaultPathWidth = 20
)

// Layout holds the column widths shared by every rendered line.
type Layout struct {
	NameWidth  int
	PathWidth  int
	Width      int
	Hyperlinks bool
}

// NewLayout computes the columns from all the todos and the width of the display.
// The total width grows past displayWidth when needed so columns never overlap.
func NewLayout(todos []*model.Todo, displayWidth int) *Layout {
	nameWidth := defaultNameWidth
	pathWidth := defaultPathWidth

	if len(todos) > 0 {
		nameWidth = lo.Max(lo.Map(todos, func(t *model.Todo, _ int) int {
			return utf8.RuneCountInString(t.Author)
		})) + 1

		pathWidth = utils.Max(lo.Max(lo.Map(todos, func(t *model.Todo, _ int) int {
			return utf8.RuneCountInString(t.FilenameWithLine())
		})), minPathWidth)
	}

	return &Layout{
		NameWidth: nameWidth,
		PathWidth: pathWidth,
		Width:     utils.Max(displayWidth, nameWidth+pathWidth+reservedWidth),
	}
}

// TextWidth is the space left for the marker text.
func (l *Layout) TextWidth() int {
	return l.Width - l.NameWidth - l.PathWidth - reservedWidth
}
