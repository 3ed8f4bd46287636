package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hnimtadd/tcap/logger"
)

// DefaultTerm is used when TERM is unset or empty.
const DefaultTerm = "dumb"

var systemDirs = []string{
	"/etc/terminfo",
	"/lib/terminfo",
	"/usr/share/terminfo",
}

// TermName returns $TERM, or DefaultTerm when it is unset.
func TermName() string {
	if name := os.Getenv("TERM"); name != "" {
		return name
	}
	return DefaultTerm
}

// SearchPaths returns the directories searched for compiled entries, most
// specific first: $TERMINFO, $HOME/.terminfo, each element of
// $TERMINFO_DIRS (an empty element stands for the system directories) and
// then the system directories. Duplicates are dropped.
func SearchPaths() []string {
	var dirs []string
	if dir := os.Getenv("TERMINFO"); dir != "" {
		dirs = append(dirs, dir)
	}
	if home := os.Getenv("HOME"); home != "" {
		dirs = append(dirs, filepath.Join(home, ".terminfo"))
	}
	if list := os.Getenv("TERMINFO_DIRS"); list != "" {
		for _, dir := range strings.Split(list, string(os.PathListSeparator)) {
			if dir == "" {
				dirs = append(dirs, systemDirs...)
				continue
			}
			dirs = append(dirs, dir)
		}
	}
	dirs = append(dirs, systemDirs...)

	seen := make(map[string]bool, len(dirs))
	out := dirs[:0]
	for _, dir := range dirs {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		out = append(out, dir)
	}
	return out
}

// Locate returns the path of the compiled entry for name. Each directory is
// tried with the entry filed under its first character and then under the
// hex code of that character.
func Locate(name string, dirs []string) (string, error) {
	if name == "" || strings.ContainsRune(name, '/') || name == "." || name == ".." {
		return "", fmt.Errorf("%w: invalid terminal name %q", ErrNotFound, name)
	}
	subdirs := []string{name[:1], fmt.Sprintf("%02x", name[0])}
	for _, dir := range dirs {
		for _, sub := range subdirs {
			path := filepath.Join(dir, sub, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Dirs overrides SearchPaths when non-empty.
	Dirs   []string
	Logger logger.Logger
}

// Load locates, reads and decodes the entry for name. An empty name means
// TermName().
func Load(name string, opts LoadOptions) (*Terminal, error) {
	log := logger.OrNop(opts.Logger)
	if name == "" {
		name = TermName()
	}
	dirs := opts.Dirs
	if len(dirs) == 0 {
		dirs = SearchPaths()
	}

	path, err := Locate(name, dirs)
	if err != nil {
		log.Debug("terminfo entry not found", "name", name, "dirs", dirs)
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	t, err := Decode(data)
	if err != nil {
		log.Warn("terminfo entry is malformed", "path", path, "error", err)
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	t.Name = name
	log.Debug("terminfo entry loaded",
		"name", name,
		"path", path,
		"bools", len(t.Bools),
		"numbers", len(t.Numbers),
		"strings", len(t.Strings),
		"extended", len(t.Extended),
	)
	return t, nil
}
