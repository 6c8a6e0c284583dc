package host

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// AddonSet holds the names of add-ons present when the run started.
type AddonSet map[string]struct{}

// Has reports whether name is in the set.
func (s AddonSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set's members sorted.
func (s AddonSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ExistingAddons lists the non-hidden entries of v's add-ons directory.
// On error it still returns an empty, usable set.
func (r Registry) ExistingAddons(v Variant) (AddonSet, error) {
	set := AddonSet{}

	dir := r.AddonsDir(v)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return set, fmt.Errorf("reading add-ons directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		set[entry.Name()] = struct{}{}
	}
	return set, nil
}
