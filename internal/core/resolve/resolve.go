package resolve

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"grop/internal/logging"
	"grop/internal/model"
)

// Resolver turns a path or glob pattern into the files to scan.
type Resolver struct {
	fs   billy.Filesystem
	base string
	log  logging.Logger
}

type Option func(*Resolver)

func WithLogger(l logging.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// WithBase makes relative inputs resolve against dir. Results keep the
// caller's relative form.
func WithBase(dir string) Option {
	return func(r *Resolver) { r.base = dir }
}

func New(fs billy.Filesystem, opts ...Option) *Resolver {
	r := &Resolver{fs: fs, log: logging.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewOS returns a resolver over the host filesystem, relative to the current
// working directory.
func NewOS(opts ...Option) (*Resolver, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	all := append([]Option{WithBase(cwd)}, opts...)
	return New(osfs.New(string(filepath.Separator)), all...), nil
}

func (r *Resolver) Filesystem() billy.Filesystem { return r.fs }

// Base is the directory relative inputs resolve against, or "" for none.
func (r *Resolver) Base() string { return r.base }

// Resolve returns the single existing entry named by input, or else every
// entry the input matches as a glob, flagged as expanded. Entries that cannot
// be stat'ed are skipped. No entries at all is a NotFound error.
func (r *Resolver) Resolve(input string) ([]model.Target, error) {
	name := r.abs(input)

	if _, err := r.fs.Stat(name); err == nil {
		r.log.Debugf("%s exists, scanning it directly", input)
		return []model.Target{{Path: r.display(input, name)}}, nil
	}

	matches, err := util.Glob(r.fs, name)
	if err != nil {
		r.log.Debugf("glob %q: %v", input, err)
		matches = nil
	}

	targets := make([]model.Target, 0, len(matches))
	for _, m := range matches {
		if _, err := r.fs.Stat(m); err != nil {
			r.log.Debugf("skipping %s: %v", m, err)
			continue
		}
		targets = append(targets, model.Target{Path: r.display(input, m), Expanded: true})
	}
	if len(targets) == 0 {
		return nil, model.NotFoundError(input)
	}
	r.log.Debugf("%q expanded to %d file(s)", input, len(targets))
	return targets, nil
}

// ReadFile reads a resolved target through the resolver's filesystem.
func (r *Resolver) ReadFile(path string) ([]byte, error) {
	return util.ReadFile(r.fs, r.abs(path))
}

func (r *Resolver) abs(p string) string {
	if r.base == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.base, p)
}

func (r *Resolver) display(input, p string) string {
	if r.base == "" || filepath.IsAbs(input) {
		return p
	}
	if p == r.abs(input) {
		return input
	}
	if rel, err := filepath.Rel(r.base, p); err == nil {
		return rel
	}
	return p
}
