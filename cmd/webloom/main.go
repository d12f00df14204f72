package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/webloom-dev/webloom/internal/interfaces/cli/migrate"
	"github.com/webloom-dev/webloom/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "webloom",
		Short: "Webloom - multi-tenant website builder backend",
		Long:  `Webloom is the backend for a multi-tenant website builder with subscription billing and AI credit metering.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
