package gropcli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"grop/internal/model"
)

func chdirWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	t.Chdir(root)
	return root
}

func TestParseDefaults(t *testing.T) {
	chdirWithFiles(t, map[string]string{"a.txt": "hello"})

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"hello", "a.txt"})
	_, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.CaseInsensitive || opts.ShowFilename {
		t.Fatalf("opts=%+v", opts)
	}
	if opts.Color != "auto" {
		t.Fatalf("Color=%q", opts.Color)
	}
	if opts.LogLevel != "warn" {
		t.Fatalf("LogLevel=%q", opts.LogLevel)
	}
}

func TestParseShortFlags(t *testing.T) {
	chdirWithFiles(t, map[string]string{"a.txt": "hello"})

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"-i", "-f", "--color", "NEVER", "hello", "a.txt"})
	_, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !opts.CaseInsensitive || !opts.ShowFilename {
		t.Fatalf("opts=%+v", opts)
	}
	if opts.Color != "never" {
		t.Fatalf("Color=%q", opts.Color)
	}
}

func TestExcludeCSV(t *testing.T) {
	chdirWithFiles(t, map[string]string{"a.txt": "k"})

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"k", "a.txt", "-x", "*.js,*.sql"})
	_, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(opts.ExcludeGlobs) != 2 || opts.ExcludeGlobs[0] != "*.js" || opts.ExcludeGlobs[1] != "*.sql" {
		t.Fatalf("ExcludeGlobs=%v", opts.ExcludeGlobs)
	}
}

func TestPrepareRejects(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want string
	}{
		{"color", Options{Color: "rainbow"}, "--color"},
		{"log level", Options{LogLevel: "loud"}, "log level"},
		{"renderers", Options{Jsonl: true, VimLines: true}, "cannot be used together"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Prepare()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err=%v", err)
			}
		})
	}
}

func TestInvalidFlagValueIsArgumentError(t *testing.T) {
	chdirWithFiles(t, map[string]string{"a.txt": "k"})

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--color", "rainbow", "k", "a.txt"})
	_, _, err := ExecuteForTest(cmd)
	if model.KindOf(err) != model.KindArgument {
		t.Fatalf("err=%v kind=%v", err, model.KindOf(err))
	}
}

func TestUnknownFlagIsArgumentError(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--nope", "k", "a.txt"})
	_, _, err := ExecuteForTest(cmd)
	if model.KindOf(err) != model.KindArgument {
		t.Fatalf("err=%v kind=%v", err, model.KindOf(err))
	}
}
