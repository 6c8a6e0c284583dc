package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoInstallation is returned by Probe when no variant is installed.
var ErrNoInstallation = errors.New("no installation of Local found")

// Variant is a build channel of the host application.
type Variant int

const (
	Primary Variant = iota
	Beta
)

// Variants lists every known variant in probe order.
var Variants = []Variant{Primary, Beta}

// String returns the variant's display name.
func (v Variant) String() string {
	switch v {
	case Primary:
		return "Local"
	case Beta:
		return "Local Beta"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

const (
	addonsDirName     = "addons"
	enabledAddonsFile = "enabled-addons.json"
)

// Registry locates variant directories under an application support root.
// It is built once at startup and never modified.
type Registry struct {
	// Root is the per-user application support directory.
	Root string
	// Apps maps each variant to its directory name under Root.
	Apps map[Variant]string
}

// NewRegistry returns a Registry with the standard directory names under root.
func NewRegistry(root string) Registry {
	return Registry{
		Root: root,
		Apps: map[Variant]string{
			Primary: Primary.String(),
			Beta:    Beta.String(),
		},
	}
}

// Dir returns the installation directory of v.
func (r Registry) Dir(v Variant) string {
	return filepath.Join(r.Root, r.Apps[v])
}

// AddonsDir returns the add-ons directory of v.
func (r Registry) AddonsDir(v Variant) string {
	return filepath.Join(r.Dir(v), addonsDirName)
}

// EnabledAddonsPath returns the file in which v records enabled add-ons.
func (r Registry) EnabledAddonsPath(v Variant) string {
	return filepath.Join(r.Dir(v), enabledAddonsFile)
}

// Installed returns the variants whose installation directory exists.
func (r Registry) Installed() []Variant {
	var installed []Variant
	for _, v := range Variants {
		if _, ok := r.Apps[v]; !ok {
			continue
		}
		if _, err := os.Stat(r.Dir(v)); err == nil {
			installed = append(installed, v)
		}
	}
	return installed
}

// Probe chooses the active variant. Beta wins only when preferred and
// installed; otherwise Primary is used when present, then Beta.
func (r Registry) Probe(preferBeta bool) (Variant, error) {
	return Select(r.Installed(), preferBeta)
}

// Select applies the variant preference to an installed set.
func Select(installed []Variant, preferBeta bool) (Variant, error) {
	has := func(want Variant) bool {
		for _, v := range installed {
			if v == want {
				return true
			}
		}
		return false
	}

	switch {
	case preferBeta && has(Beta):
		return Beta, nil
	case has(Primary):
		return Primary, nil
	case has(Beta):
		return Beta, nil
	default:
		return 0, ErrNoInstallation
	}
}
