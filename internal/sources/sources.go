// Package sources turns command line arguments into an ordered list of files.
package sources

import (
	"os"
	"path/filepath"
	"sort"

	"tiffview/internal/errors"
	"tiffview/internal/log"

	"github.com/gobwas/glob"
)

// Matcher reports whether a base file name is a viewable source.
type Matcher struct {
	globs []glob.Glob
}

// NewMatcher compiles patterns. An invalid pattern is a config error.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("invalid source pattern "+p, "sources.patterns", errors.InvalidConfig, err)
		}
		m.globs = append(m.globs, g)
	}
	return m, nil
}

// Match reports whether name matches any pattern.
func (m *Matcher) Match(name string) bool {
	for _, g := range m.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Expander replaces directory arguments with the matching files they contain.
type Expander struct {
	Matcher *Matcher
	ReadDir func(name string) ([]os.DirEntry, error)
}

// NewExpander compiles patterns and lists directories with os.ReadDir.
func NewExpander(patterns []string) (*Expander, error) {
	m, err := NewMatcher(patterns)
	if err != nil {
		return nil, err
	}
	return &Expander{Matcher: m, ReadDir: os.ReadDir}, nil
}

// Expand returns args in order with every directory replaced by its matching
// regular files, sorted by name. Subdirectories are not descended into.
// Anything that is not a directory, including paths that do not exist, is
// passed through so the decoder can report it. A directory that cannot be
// listed is logged and skipped.
func (e *Expander) Expand(args []string) []string {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			out = append(out, arg)
			continue
		}

		entries, err := e.ReadDir(arg)
		if err != nil {
			ferr := errors.NewFileError("could not read directory", arg, errors.FileReadFailed, err)
			log.LogWithError(ferr).Error("Skipping directory")
			continue
		}

		var names []string
		for _, entry := range entries {
			if !entry.Type().IsRegular() || !e.Matcher.Match(entry.Name()) {
				continue
			}
			names = append(names, entry.Name())
		}
		sort.Strings(names)

		log.Debugf("Expanded %s to %d files", arg, len(names))
		if len(names) == 0 {
			log.LogWithFields(log.F("dir", arg)).Warn("No matching files in directory")
		}
		for _, n := range names {
			out = append(out, filepath.Join(arg, n))
		}
	}
	return out
}

// Expand compiles patterns and expands args with a default Expander.
func Expand(args []string, patterns []string) ([]string, error) {
	e, err := NewExpander(patterns)
	if err != nil {
		return nil, err
	}
	return e.Expand(args), nil
}
