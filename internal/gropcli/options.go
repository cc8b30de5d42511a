package gropcli

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"grop/internal/logging"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type Options struct {
	CaseInsensitive bool
	ShowFilename    bool
	Color           string
	Jsonl           bool
	VimLines        bool
	Gitignore       bool
	ExcludeGlobs    []string
	LogLevel        string
}

func (o *Options) Prepare() error {
	o.normalize()

	switch o.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return fmt.Errorf("invalid --color %q (expected: auto|always|never)", o.Color)
	}

	level, err := logging.ParseLevel(o.LogLevel)
	if err != nil {
		return err
	}
	o.LogLevel = level

	if o.Jsonl && o.VimLines {
		return fmt.Errorf("--jsonl and --vim-lines cannot be used together")
	}
	return nil
}

func (o *Options) normalize() {
	o.Color = strings.ToLower(strings.TrimSpace(o.Color))
	if o.Color == "" {
		o.Color = colorAuto
	}

	var globs []string
	for _, g := range o.ExcludeGlobs {
		if g = strings.TrimSpace(g); g != "" {
			globs = append(globs, g)
		}
	}
	o.ExcludeGlobs = globs
}

type optionsKey struct{}

func optionsFrom(cmd *cobra.Command) *Options {
	if cmd == nil {
		return nil
	}
	root := cmd.Root()
	if root == nil {
		root = cmd
	}
	ctx := root.Context()
	if ctx == nil {
		return nil
	}
	opts, _ := ctx.Value(optionsKey{}).(*Options)
	return opts
}

func bindFlags(cmd *cobra.Command, opts *Options) {
	cmd.Flags().BoolVarP(&opts.CaseInsensitive, "ignore-case", "i", opts.CaseInsensitive, "case in-sensitive search")
	cmd.Flags().BoolVarP(&opts.ShowFilename, "filename", "f", opts.ShowFilename, "always show the filename before each match")
	cmd.Flags().StringVar(&opts.Color, "color", opts.Color, "highlight matches: auto|always|never")
	cmd.Flags().BoolVar(&opts.Jsonl, "jsonl", opts.Jsonl, "output as JSONL")
	cmd.Flags().BoolVarP(&opts.VimLines, "vim-lines", "L", opts.VimLines, "vim friendly lines")
	cmd.Flags().BoolVar(&opts.Gitignore, "gitignore", opts.Gitignore, "skip expanded files ignored by .gitignore")
	cmd.Flags().StringSliceVarP(&opts.ExcludeGlobs, "exclude", "x", nil, "skip expanded files matching these globs (comma separated list: -x *.js,*.sql)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "diagnostics on stderr: trace|debug|info|warn|error")
}

// ExecuteForTest runs cmd with output captured and returns the parsed
// options alongside it.
func ExecuteForTest(cmd *cobra.Command) (string, Options, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	opts := optionsFrom(cmd)
	if opts == nil {
		return out.String(), Options{}, err
	}
	opts.normalize()

	return out.String(), *opts, err
}

func newDefaultOptions() *Options {
	return &Options{
		Color:    colorAuto,
		LogLevel: "warn",
	}
}

func withOptionsContext(cmd *cobra.Command, parent context.Context, opts *Options) {
	if parent == nil {
		parent = context.Background()
	}
	cmd.SetContext(context.WithValue(parent, optionsKey{}, opts))
}
