package model

// Occurrence is a half-open byte range [Start, End) inside a matched line.
type Occurrence struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (o Occurrence) Len() int { return o.End - o.Start }

// MatchLine is one line of a file that contains the query. Text is a slice of
// the file contents, not a copy.
type MatchLine struct {
	Number int    `json:"line"`
	Text   string `json:"text"`
}

// Target is a file selected for scanning. Expanded is set when the path came
// from glob expansion rather than naming an existing entry directly.
type Target struct {
	Path     string `json:"path"`
	Expanded bool   `json:"expanded"`
}

type ResultItem struct {
	Path        string       `json:"path"`
	Line        int          `json:"line"`
	Text        string       `json:"text"`
	Occurrences []Occurrence `json:"occurrences"`
}
