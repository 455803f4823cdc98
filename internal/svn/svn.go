// Package svn wraps an export-capable version-control client. The remote
// corpus is addressed by URL; the harness only needs two operations: list
// the immediate children of a URL and export one child into the current
// directory.
package svn

import (
	"fmt"
	"strings"

	"souftest/internal/execx"
)

// Client lists and exports subtrees of a remote repository URL.
type Client interface {
	// List returns the names of the immediate children of url, without
	// trailing slashes.
	List(url string) ([]string, error)
	// Export materializes url into the current working directory.
	Export(url string) error
}

// CLI shells out to an svn binary.
type CLI struct {
	// Bin is the client executable; empty means "svn".
	Bin string
}

func (c CLI) bin() string {
	if c.Bin == "" {
		return "svn"
	}
	return c.Bin
}

func (c CLI) List(url string) ([]string, error) {
	out, res := execx.Run(c.bin(), "ls", url)
	if !res.Ok() {
		return nil, fmt.Errorf("%s ls %s: exit %d", c.bin(), url, res.Code)
	}
	return parseList(out), nil
}

func (c CLI) Export(url string) error {
	if _, res := execx.Run(c.bin(), "export", url); !res.Ok() {
		return fmt.Errorf("%s export %s: exit %d", c.bin(), url, res.Code)
	}
	return nil
}

// parseList extracts directory names from `svn ls` output: one entry per
// line, directories suffixed with "/". Plain files are ignored.
func parseList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasSuffix(line, "/") {
			continue
		}
		name := strings.TrimSuffix(line, "/")
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
