package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/ethan309/create-local-addon/internal/branding"
	"github.com/ethan309/create-local-addon/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagBeta          bool
	flagPlaceDirectly bool
	flagDoNotSymlink  bool
	flagDisable       bool
	flagVerbose       bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` downloads the add-on boilerplate, unpacks it under the chosen name
and wires it into your Local installation.

By default the add-on is created in the current directory, symlinked into
Local's add-ons directory and enabled.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagBeta, "beta", false, "Target Local Beta when it is installed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print debug logs to stderr")
	rootCmd.Flags().BoolVar(&flagPlaceDirectly, "place-directly", false, "Create the add-on inside Local's add-ons directory instead of the current directory")
	rootCmd.Flags().BoolVar(&flagDoNotSymlink, "do-not-symlink", false, "Do not symlink the add-on into Local's add-ons directory")
	rootCmd.Flags().BoolVar(&flagDisable, "disable", false, "Do not enable the add-on in Local")
}

// Execute runs the root command with build info injected via ldflags.
// Interrupts cancel the run.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.As(err, new(*pipeline.StageError)) {
		// Pipeline failures have already been reported.
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
