// Package config manages user-level settings stored at ~/.local-addon/config.yaml.
// Values can also come from LOCAL_ADDON_* environment variables. Settings
// resolves them into an immutable snapshot that the CLI turns into the host
// application registry and the boilerplate source.
package config
