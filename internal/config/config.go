package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ethan309/create-local-addon/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyBoilerplateURL   = "boilerplate_url"
	KeyBoilerplateRoot  = "boilerplate_root"
	KeyDefaultAddonName = "default_addon_name"
	KeyDownloadTimeout  = "download_timeout"
	KeyAppSupportDir    = "app_support_dir"
)

// DefaultDownloadTimeout bounds the boilerplate download.
const DefaultDownloadTimeout = 2 * time.Minute

// Keys lists every setting understood by the CLI.
func Keys() []string {
	return []string{
		KeyBoilerplateURL,
		KeyBoilerplateRoot,
		KeyDefaultAddonName,
		KeyDownloadTimeout,
		KeyAppSupportDir,
	}
}

// Settings is a resolved, read-only snapshot of the configuration.
type Settings struct {
	BoilerplateURL   string
	BoilerplateRoot  string
	DefaultAddonName string
	DownloadTimeout  time.Duration
	// AppSupportDir overrides the per-OS application support directory when set.
	AppSupportDir string
}

// Dir returns the path to the config directory (~/.local-addon/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.local-addon/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper with defaults, the config file and the environment.
func Load() {
	viper.SetDefault(KeyBoilerplateURL, branding.BoilerplateURL())
	viper.SetDefault(KeyBoilerplateRoot, branding.BoilerplateRoot())
	viper.SetDefault(KeyDefaultAddonName, branding.DefaultAddonName())
	viper.SetDefault(KeyDownloadTimeout, DefaultDownloadTimeout.String())
	viper.SetDefault(KeyAppSupportDir, "")

	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Resolve returns the current settings. Load must be called first.
func Resolve() (Settings, error) {
	s := Settings{
		BoilerplateURL:   viper.GetString(KeyBoilerplateURL),
		BoilerplateRoot:  viper.GetString(KeyBoilerplateRoot),
		DefaultAddonName: viper.GetString(KeyDefaultAddonName),
		AppSupportDir:    viper.GetString(KeyAppSupportDir),
	}

	raw := viper.GetString(KeyDownloadTimeout)
	timeout, err := time.ParseDuration(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("parsing %s %q: %w", KeyDownloadTimeout, raw, err)
	}
	if timeout <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive, got %s", KeyDownloadTimeout, raw)
	}
	s.DownloadTimeout = timeout

	if s.BoilerplateURL == "" {
		return Settings{}, fmt.Errorf("%s must not be empty", KeyBoilerplateURL)
	}
	if s.BoilerplateRoot == "" {
		return Settings{}, fmt.Errorf("%s must not be empty", KeyBoilerplateRoot)
	}
	if s.DefaultAddonName == "" {
		s.DefaultAddonName = branding.DefaultAddonName()
	}
	return s, nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if key == KeyDownloadTimeout {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
