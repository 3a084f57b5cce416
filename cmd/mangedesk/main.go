package main

import (
	"os"

	"github.com/spf13/cobra"

	"mangedesk/internal/interfaces/cli/migrate"
	"mangedesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mangedesk",
		Short: "MangeDesk - maintenance helpdesk backend",
		Long:  `MangeDesk is a helpdesk backend for maintenance tickets and asset tracking, with a built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
