package diff

import (
    "strings"
    "testing"
)

func TestPlainSnapshot(t *testing.T) {
    v := NewDiffView(true)
    out := v.View("up:0 down:1", "up:1 down:0")
    lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
    if len(lines) != 2 {
        t.Fatalf("expected two lines, got %q", out)
    }
    if !strings.HasPrefix(lines[0], "- up:") || !strings.HasPrefix(lines[1], "+ up:") {
        t.Fatalf("missing +/- prefixes: %q", out)
    }
    if !strings.Contains(lines[0], "[-0-]") || !strings.Contains(lines[1], "{+1+}") {
        t.Fatalf("expected char-level marks: %q", out)
    }
    if strings.Contains(lines[0], "{+") || strings.Contains(lines[1], "[-") {
        t.Fatalf("insertions and deletions leaked across lines: %q", out)
    }
}

func TestUnchangedSnapshot(t *testing.T) {
    out := NewDiffView(true).View("same", "same")
    if out != "  same\n" {
        t.Fatalf("View = %q", out)
    }
}
