package model

import (
	"fmt"
	"path/filepath"
)

// Location is a line in a file that contains a TODO marker.
type Location struct {
	Path string
	Line int
	Text string
}

func NewLocation(path string, line int, text string) *Location {
	return &Location{
		Path: path,
		Line: line,
		Text: text,
	}
}

func (l *Location) Filename() string {
	return filepath.Base(l.Path)
}

func (l *Location) FilenameWithLine() string {
	return fmt.Sprintf("%v:%v", l.Filename(), l.Line)
}

func (l *Location) String() string {
	return fmt.Sprintf("%v:%v", l.Path, l.Line)
}
