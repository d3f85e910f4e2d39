package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/pokedex/internal/app"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var prefsFlag string
	return buildRootCommand(newCommandContext(&configFlag, &prefsFlag))
}

func buildRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pokedex",
		Short:         "Browse Pokémon from PokeAPI",
		Long:          "Browse Pokémon from PokeAPI.\n\nWithout a subcommand, pokedex opens the interactive browser when stdout is a terminal and prints the list otherwise.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ctx.terminal(cmd.OutOrStdout()) {
				return runList(cmd, ctx, false)
			}
			return app.Run(cmd.Context(), ctx.options())
		},
	}

	rootCmd.PersistentFlags().StringVarP(ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(ctx.prefsFlag, "prefs", "", "Preferences file path")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newLogsCommand(ctx))

	return rootCmd
}
