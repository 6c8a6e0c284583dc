package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
)

// ErrUnsupportedPlatform is returned for operating systems missing from the lookup table.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Getenv looks up an environment variable; os.Getenv satisfies it.
type Getenv func(key string) string

// appSupportResolvers maps GOOS values to the directory desktop applications
// keep their per-user data in.
var appSupportResolvers = map[string]func(home string, getenv Getenv) string{
	"darwin": func(home string, _ Getenv) string {
		return filepath.Join(home, "Library", "Application Support")
	},
	"windows": func(home string, getenv Getenv) string {
		if v := getenv("APPDATA"); v != "" {
			return v
		}
		return filepath.Join(home, "AppData", "Roaming")
	},
	"linux": func(home string, getenv Getenv) string {
		if v := getenv("XDG_CONFIG_HOME"); v != "" {
			return v
		}
		return filepath.Join(home, ".config")
	},
}

// AppSupportDir returns the application support directory for goos.
func AppSupportDir(goos, home string, getenv Getenv) (string, error) {
	resolve, ok := appSupportResolvers[goos]
	if !ok {
		return "", fmt.Errorf("%w %q (supported: %v)", ErrUnsupportedPlatform, goos, SupportedPlatforms())
	}
	if home == "" {
		return "", fmt.Errorf("resolving application support directory on %s: empty home directory", goos)
	}
	return resolve(home, getenv), nil
}

// CurrentAppSupportDir resolves AppSupportDir for the running OS.
func CurrentAppSupportDir(home string, getenv Getenv) (string, error) {
	return AppSupportDir(runtime.GOOS, home, getenv)
}

// SupportedPlatforms returns the GOOS keys of the lookup table, sorted.
func SupportedPlatforms() []string {
	keys := make([]string, 0, len(appSupportResolvers))
	for k := range appSupportResolvers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
