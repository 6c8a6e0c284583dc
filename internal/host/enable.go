package host

import (
	"encoding/json"
	"fmt"
	"os"
)

// Enabler marks an add-on as enabled for a variant.
type Enabler interface {
	Enable(v Variant, name string) error
}

// EnabledAddonsFile enables add-ons by setting "<name>": true in the
// variant's enabled-addons.json, the file Local reads at startup.
type EnabledAddonsFile struct {
	Registry Registry
}

// Enable implements Enabler. Other entries in the file are preserved.
func (e EnabledAddonsFile) Enable(v Variant, name string) error {
	path := e.Registry.EnabledAddonsPath(v)

	enabled := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(data) > 0 {
			if err := json.Unmarshal(data, &enabled); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			if enabled == nil {
				// The file held a JSON null.
				enabled = map[string]any{}
			}
		}
	case os.IsNotExist(err):
	default:
		return fmt.Errorf("reading %s: %w", path, err)
	}

	enabled[name] = true

	out, err := json.MarshalIndent(enabled, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding enabled add-ons: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// IsEnabled reports whether name is marked enabled for v.
func (e EnabledAddonsFile) IsEnabled(v Variant, name string) (bool, error) {
	enabled, err := e.Enabled(v)
	if err != nil {
		return false, err
	}
	return enabled[name], nil
}

// Enabled returns the add-ons marked enabled for v. A missing file yields an
// empty set.
func (e EnabledAddonsFile) Enabled(v Variant) (map[string]bool, error) {
	path := e.Registry.EnabledAddonsPath(v)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return map[string]bool{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]any
	if len(data) > 0 {
		if err := json.Unmarshal(data, &raw); err != nil {
			return map[string]bool{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	enabled := make(map[string]bool, len(raw))
	for name, v := range raw {
		if on, _ := v.(bool); on {
			enabled[name] = true
		}
	}
	return enabled, nil
}
