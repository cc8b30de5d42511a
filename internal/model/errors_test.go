package model

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
		kind ErrorKind
	}{
		{name: "argument", err: ArgumentError(errors.New("accepts 2 arg(s), received 1")), want: "accepts 2 arg(s), received 1", kind: KindArgument},
		{name: "not_found", err: NotFoundError("logs/*.txt"), want: "file 'logs/*.txt' does not exist", kind: KindNotFound},
		{name: "io", err: IOError("a.txt", fs.ErrPermission), want: "read a.txt: permission denied", kind: KindIO},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error()=%q want %q", got, tc.want)
			}
			wrapped := fmt.Errorf("run: %w", tc.err)
			if got := KindOf(wrapped); got != tc.kind {
				t.Fatalf("KindOf=%v want %v", got, tc.kind)
			}
		})
	}
}

func TestIOErrorUnwraps(t *testing.T) {
	err := IOError("missing.txt", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("errors.Is(ErrNotExist) false for %v", err)
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != 0 {
		t.Fatalf("KindOf=%v", got)
	}
	if !strings.Contains(ErrorKind(0).String(), "unknown") {
		t.Fatalf("zero kind String()=%q", ErrorKind(0).String())
	}
}
