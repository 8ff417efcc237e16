package main

import (
	"github.com/spf13/cobra"

	"movielib/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var fileFlag string

	ctx := newCommandContext(&configFlag, &fileFlag)

	rootCmd := &cobra.Command{
		Use:           "movielib",
		Short:         "Manage a flat-file movie catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(logging.WithCommand(cmd.Context(), cmd.Name()))
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Catalog file (overrides library.path)")

	for _, cmd := range newCatalogCommands(ctx) {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(newMenuCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
