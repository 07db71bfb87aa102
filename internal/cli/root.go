package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/seam-carver/internal/config"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "unknown" // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version and the
// version command. It is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the seamcarve CLI and returns an error if any command fails.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func versionString() string {
	return fmt.Sprintf("seamcarve %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "seamcarve",
		Short:        "seamcarve narrows images by removing vertical seams",
		Long:         `seamcarve removes one-pixel-wide top-to-bottom paths ("seams") from an image, choosing either the bluest seam or the seam with the lowest energy, with full undo.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			level, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			if verbose {
				level = log.DebugLevel
			}

			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(versionString())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(newInteractiveCmd())
	root.AddCommand(newCarveCmd())
	root.AddCommand(newEnergyCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), versionString())
			return err
		},
	}
}
