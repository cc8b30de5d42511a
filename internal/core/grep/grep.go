// Package grep runs one search: resolve the input, read each target in
// order, scan it and hand every match line to a Sink.
package grep

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"grop/internal/core/resolve"
	"grop/internal/core/search"
	"grop/internal/core/walk"
	"grop/internal/logging"
	"grop/internal/model"
)

// Sink receives match lines in file order.
type Sink interface {
	WriteMatch(m *search.Matcher, file string, showFilename bool, line model.MatchLine) error
}

type Config struct {
	Query           string
	Input           string
	CaseInsensitive bool
	// ShowFilename forces the filename prefix for literal targets too.
	ShowFilename bool

	Resolver *resolve.Resolver
	Filter   *walk.Filter
	Logger   logging.Logger
}

type Stats struct {
	Files       int
	Bytes       int
	Lines       int
	Occurrences int
}

var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Run stops at the first error. Output already handed to sink stays written.
func Run(ctx context.Context, cfg Config, sink Sink) (Stats, error) {
	var stats Stats
	if cfg.Resolver == nil {
		return stats, fmt.Errorf("resolver missing")
	}
	if sink == nil {
		return stats, fmt.Errorf("sink missing")
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	targets, err := cfg.Resolver.Resolve(cfg.Input)
	if err != nil {
		return stats, err
	}
	if cfg.Filter.Active() {
		before := len(targets)
		targets = cfg.Filter.Apply(targets)
		log.Debugf("filter kept %d of %d target(s)", len(targets), before)
		if len(targets) == 0 {
			return stats, model.NotFoundError(cfg.Input)
		}
	}

	m := search.NewMatcher(cfg.Query, cfg.CaseInsensitive)
	for _, t := range targets {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		n, err := scanTarget(cfg, m, t, sink, &stats)
		if err != nil {
			return stats, err
		}
		stats.Files++
		log.Tracef("%s: %d matching line(s)", t.Path, n)
	}
	log.Debugf("scanned %d file(s) (%s), %d line(s), %d occurrence(s)",
		stats.Files, humanize.Bytes(uint64(stats.Bytes)), stats.Lines, stats.Occurrences)
	return stats, nil
}

func scanTarget(cfg Config, m *search.Matcher, t model.Target, sink Sink, stats *Stats) (int, error) {
	data, err := cfg.Resolver.ReadFile(t.Path)
	if err != nil {
		return 0, model.IOError(t.Path, err)
	}
	if !utf8.Valid(data) {
		return 0, model.IOError(t.Path, errInvalidUTF8)
	}
	stats.Bytes += len(data)

	showFilename := cfg.ShowFilename || t.Expanded
	n := 0
	for line := range m.Scan(string(data)) {
		if err := sink.WriteMatch(m, t.Path, showFilename, line); err != nil {
			return n, err
		}
		n++
		stats.Lines++
		for range m.Occurrences(line.Text) {
			stats.Occurrences++
		}
	}
	return n, nil
}
