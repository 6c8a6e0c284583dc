package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ethan309/create-local-addon/internal/boilerplate"
	"github.com/ethan309/create-local-addon/internal/branding"
	"github.com/ethan309/create-local-addon/internal/config"
	"github.com/ethan309/create-local-addon/internal/host"
	"github.com/ethan309/create-local-addon/internal/naming"
	"github.com/ethan309/create-local-addon/internal/pipeline"
	"github.com/ethan309/create-local-addon/internal/platform"
	"github.com/ethan309/create-local-addon/internal/report"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func runCreate(cmd *cobra.Command, args []string) error {
	config.Load()
	settings, err := config.Resolve()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := report.NewLogger(branding.CLIName(), flagVerbose, cmd.ErrOrStderr())
	reporter := report.New(cmd.OutOrStdout())
	reporter.Banner(branding.DisplayName())

	registry, err := resolveRegistry(settings)
	if err != nil {
		reporter.Error("%v", err)
		return pipeline.SetupError(err)
	}
	logger.Debug("application support directory", "path", registry.Root)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	p := &pipeline.Pipeline{
		Registry: registry,
		Source: boilerplate.Source{
			URL:        settings.BoilerplateURL,
			RootFolder: settings.BoilerplateRoot,
			Timeout:    settings.DownloadTimeout,
		},
		Unpacker: boilerplate.New(
			boilerplate.WithLogger(logger.Named("boilerplate")),
			boilerplate.WithUserAgent(branding.CLIName()+"/"+buildVersion),
		),
		Prompter:    newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		Enabler:     host.EnabledAddonsFile{Registry: registry},
		Link:        platform.CreateDirSymlink,
		Reporter:    reporter,
		Logger:      logger,
		WorkDir:     workDir,
		DefaultName: settings.DefaultAddonName,
	}

	opts := pipeline.Options{
		PreferBeta:    flagBeta,
		PlaceDirectly: flagPlaceDirectly,
		DoNotSymlink:  flagDoNotSymlink,
		Disable:       flagDisable,
	}
	if len(args) == 1 {
		opts.ExplicitName = args[0]
	}

	res, err := p.Run(cmd.Context(), opts)
	if err != nil {
		logger.Debug("run failed", "error", err)
		return err
	}
	logger.Debug("run complete", "variant", res.Variant.String(), "dir", res.Dir, "link", res.LinkPath, "enabled", res.Enabled)
	return nil
}

// resolveRegistry locates the application support root, honouring the
// app_support_dir override.
func resolveRegistry(settings config.Settings) (host.Registry, error) {
	if settings.AppSupportDir != "" {
		return host.NewRegistry(settings.AppSupportDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return host.Registry{}, fmt.Errorf("resolving home directory: %w", err)
	}
	root, err := platform.CurrentAppSupportDir(home, os.Getenv)
	if err != nil {
		return host.Registry{}, err
	}
	return host.NewRegistry(root), nil
}

// newPrompter uses an interactive form on a terminal and plain line prompts
// on pipes.
func newPrompter(in io.Reader, out io.Writer) naming.Prompter {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return naming.FormPrompter{}
	}
	return naming.NewLinePrompter(in, out)
}
