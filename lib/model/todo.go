package model

import (
	"encoding/json"
	"time"
)

// Todo is a Location attributed to the commit that last touched it.
type Todo struct {
	Location

	Author    string
	Timestamp time.Time
	Age       time.Duration
}

func NewTodo(location *Location, author string, timestamp time.Time, now time.Time) *Todo {
	timestamp = timestamp.UTC()

	return &Todo{
		Location:  *location,
		Author:    author,
		Timestamp: timestamp,
		Age:       now.UTC().Sub(timestamp),
	}
}

// AgeDays returns the age in whole days, truncated toward zero.
func (t *Todo) AgeDays() int64 {
	return int64(t.Age / (24 * time.Hour))
}

type jsonTodo struct {
	Path       string `json:"path"`
	LineNumber int    `json:"line_number"`
	Text       string `json:"text"`
	Author     string `json:"author"`
	Timestamp  string `json:"timestamp"`
	Age        int64  `json:"age"`
}

func (t *Todo) MarshalJSON() ([]byte, error) {
	return json.Marshal(&jsonTodo{
		Path:       t.Path,
		LineNumber: t.Line,
		Text:       t.Text,
		Author:     t.Author,
		Timestamp:  t.Timestamp.Format(time.RFC3339),
		Age:        t.Age.Milliseconds(),
	})
}
