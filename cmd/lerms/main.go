package main

import (
	"os"

	"github.com/spf13/cobra"

	"lerms/internal/interfaces/cli/admin"
	"lerms/internal/interfaces/cli/migrate"
	"lerms/internal/interfaces/cli/seed"
	"lerms/internal/interfaces/cli/server"
)

// @title LERMS API
// @version 1.0
// @description Law enforcement records management backend: vehicle registrations, driver licenses, documents, approval workflow, and record suppression.
// @BasePath /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "lerms",
		Short: "LERMS - Law enforcement records management service",
		Long:  `LERMS is a records management backend with built-in server, migration tools, seeding, and administrative commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
