package version

import "testing"

func TestStringWithCommit(t *testing.T) {
	oldV, oldC := Version, Commit
	t.Cleanup(func() { Version, Commit = oldV, oldC })

	Version, Commit = "v1.2.3", "abc123"
	if got := String(); got != "v1.2.3 (abc123)" {
		t.Fatalf("String()=%q", got)
	}

	Commit = ""
	if got := String(); got != "v1.2.3" {
		t.Fatalf("String()=%q", got)
	}
}
