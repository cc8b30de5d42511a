package highlight

import (
	"io"

	"github.com/fatih/color"

	"grop/internal/core/search"
	"grop/internal/model"
)

// Printer is the output sink for one run. It owns the writer and the
// highlight style; nothing else writes match output.
type Printer struct {
	w     io.Writer
	style *color.Color
}

// NewPrinter wraps w. When colored is false occurrences are written as plain
// text.
func NewPrinter(w io.Writer, colored bool) *Printer {
	style := color.New(color.FgRed)
	if colored {
		style.EnableColor()
	} else {
		style.DisableColor()
	}
	return &Printer{w: w, style: style}
}

// Line writes one match line. For every occurrence it writes the optional
// "<filename>: " prefix, the plain text since the previous occurrence and the
// occurrence itself in the highlight style; the rest of the line and a
// newline follow. A line without occurrences is written unchanged.
func (p *Printer) Line(m *search.Matcher, line string, filename string, showFilename bool) error {
	cursor := 0
	for o := range m.Occurrences(line) {
		if err := p.occurrence(line, cursor, o, filename, showFilename); err != nil {
			return err
		}
		cursor = o.End
	}
	if _, err := io.WriteString(p.w, line[cursor:]); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, "\n")
	return err
}

func (p *Printer) occurrence(line string, cursor int, o model.Occurrence, filename string, showFilename bool) error {
	if showFilename {
		if _, err := io.WriteString(p.w, filename+": "); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(p.w, line[cursor:o.Start]); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, p.style.Sprint(line[o.Start:o.End]))
	return err
}

// Highlight is the one-shot form of Printer.Line for a bare query.
func (p *Printer) Highlight(line, query string, caseInsensitive bool, filename string, showFilename bool) error {
	return p.Line(search.NewMatcher(query, caseInsensitive), line, filename, showFilename)
}

// WriteMatch lets a Printer serve as the runner's sink.
func (p *Printer) WriteMatch(m *search.Matcher, file string, showFilename bool, line model.MatchLine) error {
	return p.Line(m, line.Text, file, showFilename)
}
