package main

import (
	"github.com/jonathan/resumed/internal/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	flags := &renderFlags{}

	rootCmd := &cobra.Command{
		Use:   "resumed [filename]",
		Short: "Build a beautiful resume from a JSON Resume document",
		Long: `resumed renders a JSON Resume document to HTML or PDF with a theme,
scaffolds a sample document and validates documents against the JSON Resume schema.

Running resumed without a subcommand is the same as "resumed render".`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(a.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, a, flags, args)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/resumed/config.json)")
	addRenderFlags(rootCmd, flags)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newInitCmd(a))
	rootCmd.AddCommand(newValidateCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
