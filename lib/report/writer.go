package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pescuma/oldtodos/lib/stats"
	"github.com/pescuma/oldtodos/lib/todos"
)

func WriteText(out io.Writer, r *todos.Report, layout *Layout) error {
	w := bufio.NewWriter(out)

	if r.Stats != nil {
		_, _ = fmt.Fprintln(w, stats.Format(r.Stats, r.Count, r.Total))
		_, _ = fmt.Fprintln(w)
	}

	for _, todo := range r.Todos {
		_, _ = fmt.Fprintln(w, FormatTodo(todo, layout))
	}

	return w.Flush()
}

func WriteJSON(out io.Writer, r *todos.Report) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
