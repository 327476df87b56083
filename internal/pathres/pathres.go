// Package pathres resolves bare command names to executable paths by
// walking the directories of a search-path value in order. The list is
// rebuilt from the environment on every resolution; there is no cache.
package pathres

import (
	"strings"

	"github.com/spf13/afero"
)

// ListSeparator separates directory entries in a search-path value.
const ListSeparator = ":"

// Split breaks a raw search-path value into its ordered directory
// entries. An empty or unset value yields no entries. Empty segments
// are kept as produced by the split and nothing is deduplicated: the
// order of the result decides resolution precedence.
func Split(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ListSeparator)
}

// FindExecutable probes dirs in order for a file called name and
// returns the first candidate path that exists on fsys. The probe is a
// plain existence check, not a test of the executable bit; search
// lists are short and this runs once per command, so a linear scan is
// enough. Returns false when no directory holds the name.
func FindExecutable(fsys afero.Fs, dirs []string, name string) (string, bool) {

	for _, dir := range dirs {
		candidate := dir + "/" + name
		if _, err := fsys.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false

}
