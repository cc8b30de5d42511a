package search

import (
	"iter"
	"strings"

	"grop/internal/model"
)

type Match = model.MatchLine

// Matcher holds one query and the comparison mode for a whole run.
type Matcher struct {
	query           string
	needle          string
	caseInsensitive bool
}

func NewMatcher(query string, caseInsensitive bool) *Matcher {
	needle := query
	if caseInsensitive {
		needle = foldText(query)
	}
	return &Matcher{query: query, needle: needle, caseInsensitive: caseInsensitive}
}

func (m *Matcher) Query() string         { return m.query }
func (m *Matcher) CaseInsensitive() bool { return m.caseInsensitive }

// Match reports whether line contains the query under the matcher's mode.
func (m *Matcher) Match(line string) bool {
	if !m.caseInsensitive {
		return strings.Contains(line, m.needle)
	}
	return strings.Contains(foldText(line), m.needle)
}

// Scan yields the lines of contents that contain the query, in file order.
func (m *Matcher) Scan(contents string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for n, line := range Lines(contents) {
			if !m.Match(line) {
				continue
			}
			if !yield(Match{Number: n, Text: line}) {
				return
			}
		}
	}
}

// Occurrences yields the non-overlapping spans of the query in line, left to
// right. An empty query matches at every rune boundary, end of line included.
func (m *Matcher) Occurrences(line string) iter.Seq[model.Occurrence] {
	return func(yield func(model.Occurrence) bool) {
		if m.needle == "" {
			for i := range line {
				if !yield(model.Occurrence{Start: i, End: i}) {
					return
				}
			}
			yield(model.Occurrence{Start: len(line), End: len(line)})
			return
		}

		hay := folded{orig: line, text: line}
		if m.caseInsensitive {
			hay = fold(line)
		}
		pos := 0
		for pos < len(hay.text) {
			idx := strings.Index(hay.text[pos:], m.needle)
			if idx < 0 {
				return
			}
			s := pos + idx
			e := s + len(m.needle)
			if !yield(model.Occurrence{Start: hay.start(s), End: hay.end(e)}) {
				return
			}
			pos = hay.skipPartial(e)
		}
	}
}

// Scan is the one-shot form of NewMatcher(query, caseInsensitive).Scan.
func Scan(contents string, query string, caseInsensitive bool) iter.Seq[Match] {
	return NewMatcher(query, caseInsensitive).Scan(contents)
}

// FindInText collects every matching line of text.
func FindInText(text string, keyword string, caseInsensitive bool) []Match {
	var out []Match
	for m := range Scan(text, keyword, caseInsensitive) {
		out = append(out, m)
	}
	return out
}

// Occurrences collects every span of query in line.
func Occurrences(line string, query string, caseInsensitive bool) []model.Occurrence {
	var out []model.Occurrence
	for o := range NewMatcher(query, caseInsensitive).Occurrences(line) {
		out = append(out, o)
	}
	return out
}

// Lines yields 1-based line numbers and lines without their terminators. A
// break at the very end of contents does not start an extra empty line.
func Lines(contents string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := 0
		for start := 0; start < len(contents); {
			n++
			idx := strings.IndexByte(contents[start:], '\n')
			var line string
			if idx < 0 {
				line = contents[start:]
				start = len(contents)
			} else {
				line = strings.TrimSuffix(contents[start:start+idx], "\r")
				start += idx + 1
			}
			if !yield(n, line) {
				return
			}
		}
	}
}

// FirstColumn returns the 1-based byte column of the first occurrence, or 1.
func (m *Matcher) FirstColumn(line string) int {
	for o := range m.Occurrences(line) {
		return o.Start + 1
	}
	return 1
}
