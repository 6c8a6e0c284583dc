// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; Go's
// //go:embed bakes it into the binary. The boilerplate entries describe the
// archive every new add-on is seeded from.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string `yaml:"cli_name"`
	DisplayName      string `yaml:"display_name"`
	Description      string `yaml:"description"`
	HomeDir          string `yaml:"home_dir"`
	EnvPrefix        string `yaml:"env_prefix"`
	GoModule         string `yaml:"go_module"`
	GitHubRepo       string `yaml:"github_repo"`
	BoilerplateURL   string `yaml:"boilerplate_url"`
	BoilerplateRoot  string `yaml:"boilerplate_root"`
	DefaultAddonName string `yaml:"default_addon_name"`
	InstallURL       string `yaml:"install_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:          "create-local-addon",
			DisplayName:      "Local Addon Creator",
			Description:      "Scaffold a new add-on for the Local desktop application",
			HomeDir:          ".local-addon",
			EnvPrefix:        "LOCAL_ADDON",
			GoModule:         "github.com/ethan309/create-local-addon",
			GitHubRepo:       "ethan309/create-local-addon",
			BoilerplateURL:   "https://github.com/ethan309/clone-test/archive/master.zip",
			BoilerplateRoot:  "clone-test-master",
			DefaultAddonName: "my-new-local-addon",
			InstallURL:       "https://localwp.com",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "create-local-addon").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".local-addon").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "LOCAL_ADDON").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string of this CLI.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// BoilerplateURL returns the default URL of the boilerplate zip archive.
func BoilerplateURL() string { load(); return defaults.BoilerplateURL }

// BoilerplateRoot returns the name of the single top-level folder inside the
// boilerplate archive (GitHub names it "<repo>-<branch>").
func BoilerplateRoot() string { load(); return defaults.BoilerplateRoot }

// DefaultAddonName returns the name suggested when prompting for an add-on name.
func DefaultAddonName() string { load(); return defaults.DefaultAddonName }

// InstallURL returns where users can download the host application.
func InstallURL() string { load(); return defaults.InstallURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("boilerplate_url") → "LOCAL_ADDON_BOILERPLATE_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
