package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/ethan309/create-local-addon/internal/config"
	"github.com/ethan309/create-local-addon/internal/host"
	"github.com/ethan309/create-local-addon/internal/platform"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List Local installations and their add-ons",
	Long: `List the Local variants found on this machine and the add-ons installed
in the active one. Symlinked add-ons show where they point.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents an add-on for display.
type listEntry struct {
	Name    string `json:"name"`
	Target  string `json:"target,omitempty"`
	Enabled bool   `json:"enabled"`
}

type listOutput struct {
	Installed []string    `json:"installed"`
	Active    string      `json:"active"`
	AddonsDir string      `json:"addons_dir"`
	Addons    []listEntry `json:"addons"`
}

func runList(cmd *cobra.Command, args []string) error {
	config.Load()
	settings, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	registry, err := resolveRegistry(settings)
	if err != nil {
		return err
	}

	variant, err := registry.Probe(flagBeta)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No installations of Local found under %s.\n", registry.Root)
		return nil
	}

	out := listOutput{
		Active:    variant.String(),
		AddonsDir: registry.AddonsDir(variant),
		Addons:    []listEntry{},
	}
	for _, v := range registry.Installed() {
		out.Installed = append(out.Installed, v.String())
	}

	addons, err := registry.ExistingAddons(variant)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	enabled, err := host.EnabledAddonsFile{Registry: registry}.Enabled(variant)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}
	for _, name := range addons.Names() {
		entry := listEntry{Name: name, Enabled: enabled[name]}
		target, isLink, err := platform.ReadSymlinkTarget(filepath.Join(out.AddonsDir, name))
		if err == nil && isLink {
			entry.Target = target
		}
		out.Addons = append(out.Addons, entry)
	}

	if listJSON {
		return printListJSON(cmd, out)
	}
	return printListTable(cmd, out)
}

func printListTable(cmd *cobra.Command, out listOutput) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Installed: %v\n", out.Installed)
	fmt.Fprintf(cmd.OutOrStdout(), "Active:    %s (%s)\n\n", out.Active, out.AddonsDir)

	if len(out.Addons) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No add-ons installed yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tENABLED\tLINKED TO")
	for _, e := range out.Addons {
		target := e.Target
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(w, "%s\t%t\t%s\n", e.Name, e.Enabled, target)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, out listOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
