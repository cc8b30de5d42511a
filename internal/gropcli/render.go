package gropcli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"grop/internal/core/search"
	"grop/internal/model"
)

// jsonlSink writes one model.ResultItem per match line.
type jsonlSink struct {
	enc *json.Encoder
}

func newJSONLSink(w io.Writer) *jsonlSink {
	return &jsonlSink{enc: json.NewEncoder(w)}
}

func (s *jsonlSink) WriteMatch(m *search.Matcher, file string, _ bool, line model.MatchLine) error {
	return s.enc.Encode(resultItem(m, file, line))
}

// vimSink writes "path:line:col: text" lines for quickfix lists.
type vimSink struct {
	w io.Writer
}

func (s *vimSink) WriteMatch(m *search.Matcher, file string, _ bool, line model.MatchLine) error {
	_, err := fmt.Fprintf(s.w, "%s:%d:%d: %s\n", file, line.Number, m.FirstColumn(line.Text), strings.TrimSpace(line.Text))
	return err
}

func resultItem(m *search.Matcher, file string, line model.MatchLine) model.ResultItem {
	occ := []model.Occurrence{}
	for o := range m.Occurrences(line.Text) {
		occ = append(occ, o)
	}
	return model.ResultItem{
		Path:        file,
		Line:        line.Number,
		Text:        line.Text,
		Occurrences: occ,
	}
}

// RenderJSONL renders items the way --jsonl writes them.
func RenderJSONL(items []model.ResultItem) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	for _, item := range items {
		_ = enc.Encode(item)
	}
	return b.String()
}
