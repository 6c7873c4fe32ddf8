package cli

import (
	"fmt"

	"github.com/arthur-debert/textkit/internal/version"
	"github.com/arthur-debert/textkit/pkg/config"
	"github.com/arthur-debert/textkit/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Render structured data as plain-text displays",
		Long: `textkit renders structured data as fixed-width plain-text displays:
boxes, tables, trees, lists, bar charts and progress bars. Output is pure
ASCII and safe for any terminal, log file or REPL.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load()
			if err != nil {
				log.Warn().Err(err).Msg("Failed to load configuration, using defaults")
				cfg = nil
			}
			config.Initialize(cfg)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "textkit version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: "Print a commented default configuration file",
		Long: `Print a TOML configuration file with every setting present but
commented out at its default value. Save it as textkit.toml in the current
directory or under your XDG config directory to customize defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(content))
			return nil
		},
	}
}
