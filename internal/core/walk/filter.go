package walk

import (
	"path"
	"path/filepath"
	"strings"

	"grop/internal/model"
)

type Options struct {
	ExcludeGlobs []string
	Gitignore    bool
}

// Filter drops glob-expanded targets. Targets named literally on the command
// line always pass.
type Filter struct {
	root string
	opts Options
	ig   *ignoreMatcher
}

func NewFilter(root string, opts Options) (*Filter, error) {
	ig, err := loadIgnoreMatcher(root, opts.Gitignore)
	if err != nil {
		return nil, err
	}
	return &Filter{
		root: root,
		opts: opts,
		ig:   ig,
	}, nil
}

// Active reports whether the filter can drop anything.
func (f *Filter) Active() bool {
	if f == nil {
		return false
	}
	return f.opts.Gitignore || len(f.opts.ExcludeGlobs) > 0
}

func (f *Filter) ShouldInclude(rel string, isDir bool) bool {
	if f == nil {
		return true
	}
	rel = filepath.ToSlash(rel)

	if f.ig.isIgnored(rel, isDir) {
		return false
	}
	if anyGlobMatch(f.opts.ExcludeGlobs, rel) {
		return false
	}
	return true
}

func (f *Filter) Apply(targets []model.Target) []model.Target {
	if !f.Active() {
		return targets
	}
	out := targets[:0:0]
	for _, t := range targets {
		if !t.Expanded || f.ShouldInclude(f.rel(t.Path), false) {
			out = append(out, t)
		}
	}
	return out
}

func (f *Filter) rel(p string) string {
	if !filepath.IsAbs(p) || f.root == "" {
		return filepath.Clean(p)
	}
	r, err := filepath.Rel(f.root, p)
	if err != nil {
		return p
	}
	return r
}

func anyGlobMatch(patterns []string, rel string) bool {
	for _, pat := range patterns {
		if matchesGlob(pat, rel) {
			return true
		}
	}
	return false
}

func matchesGlob(pattern string, rel string) bool {
	pat := strings.TrimSpace(pattern)
	if pat == "" {
		return false
	}
	pat = strings.ReplaceAll(pat, "\\", "/")
	rel = filepath.ToSlash(rel)

	// Support csv passed via -x "*.log,*.tmp".
	if strings.Contains(pat, ",") {
		for _, piece := range strings.Split(pat, ",") {
			if matchesGlob(strings.TrimSpace(piece), rel) {
				return true
			}
		}
		return false
	}

	// Patterns without a separator match the basename.
	if !strings.Contains(pat, "/") {
		ok, _ := path.Match(pat, path.Base(rel))
		return ok
	}

	ok, _ := path.Match(pat, rel)
	return ok
}
