package gropcli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"grop/internal/core/grep"
	"grop/internal/core/highlight"
	"grop/internal/core/resolve"
	"grop/internal/core/walk"
	"grop/internal/logging"
	"grop/internal/model"
	"grop/internal/version"
)

func NewRootCommand() *cobra.Command {
	opts := newDefaultOptions()
	cmd := &cobra.Command{
		Use:   "grop [flags] <query> <path-or-glob>",
		Short: "Search files for lines containing a string",
		Long: "grop prints every line of the given file that contains the query, with each\n" +
			"occurrence highlighted. If the path does not exist it is expanded as a glob\n" +
			"pattern and every matching file is searched, filename first.",
		Args:          exactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := optionsFrom(cmd)
			if opts == nil {
				return fmt.Errorf("options missing")
			}
			return run(cmd, opts, args[0], args[1])
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Version = version.String()
	cmd.Flags().BoolP("version", "v", false, "print the version and exit")
	cmd.InitDefaultVersionFlag()

	withOptionsContext(cmd, nil, opts)
	bindFlags(cmd, opts)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return model.ArgumentError(err)
	})
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if opts := optionsFrom(cmd); opts != nil {
			if err := opts.Prepare(); err != nil {
				return model.ArgumentError(err)
			}
		}
		return nil
	}
	return cmd
}

func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return model.ArgumentError(fmt.Errorf("%w (usage: %s)", err, cmd.UseLine()))
		}
		return nil
	}
}

func run(cmd *cobra.Command, opts *Options, query, input string) error {
	log := logging.NewConsoleLogger(cmd.ErrOrStderr(), opts.LogLevel)

	resolver, err := resolve.NewOS(resolve.WithLogger(log))
	if err != nil {
		return err
	}
	filter, err := walk.NewFilter(resolver.Base(), walk.Options{
		ExcludeGlobs: opts.ExcludeGlobs,
		Gitignore:    opts.Gitignore,
	})
	if err != nil {
		return err
	}

	cfg := grep.Config{
		Query:           query,
		Input:           input,
		CaseInsensitive: opts.CaseInsensitive,
		ShowFilename:    opts.ShowFilename,
		Resolver:        resolver,
		Filter:          filter,
		Logger:          log,
	}
	stats, err := grep.Run(cmd.Context(), cfg, newSink(cmd.OutOrStdout(), opts))
	if err != nil {
		return err
	}
	log.Infof("%d matching line(s) in %d file(s)", stats.Lines, stats.Files)
	return nil
}

func newSink(w io.Writer, opts *Options) grep.Sink {
	switch {
	case opts.Jsonl:
		return newJSONLSink(w)
	case opts.VimLines:
		return &vimSink{w: w}
	default:
		return highlight.NewPrinter(w, colorEnabled(opts.Color, w))
	}
}

func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return isTerminal(w)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Main runs grop with args and returns the process exit code. Failures are
// reported on stderr as a single "grop: <message>" line.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	withOptionsContext(cmd, ctx, optionsFrom(cmd))
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		prefix := color.New(color.FgRed, color.Bold)
		if isTerminal(stderr) {
			prefix.EnableColor()
		} else {
			prefix.DisableColor()
		}
		_, _ = fmt.Fprintf(stderr, "%s %v\n", prefix.Sprint("grop:"), err)
		return 1
	}
	return 0
}
