package svn

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseList(t *testing.T) {
	out := "aggregates/\nREADME.md\narithmetic/\n\ncomparison/\n"
	got := parseList(out)
	want := []string{"aggregates", "arithmetic", "comparison"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("parseList mismatch (-want +got):\n%s", diff)
	}
}

func TestParseList_Empty(t *testing.T) {
	if got := parseList(""); got != nil {
		t.Errorf("expected nil for empty output, got %v", got)
	}
}

// stubBin writes a fake svn executable that prints canned output for "ls"
// and exits with the given code.
func stubBin(t *testing.T, lsOutput string, code int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svn-stub")
	body := "#!/bin/sh\nif [ \"$1\" = ls ]; then printf '" + lsOutput + "'; fi\nexit " + strconv.Itoa(code) + "\n"
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCLI_List(t *testing.T) {
	c := CLI{Bin: stubBin(t, `a/\nb/\n`, 0)}
	got, err := c.List("https://example.invalid/corpus")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestCLI_List_Failure(t *testing.T) {
	c := CLI{Bin: stubBin(t, "", 1)}
	if _, err := c.List("https://example.invalid/corpus"); err == nil {
		t.Fatal("expected error for non-zero svn exit")
	}
}
