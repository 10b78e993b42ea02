package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"lerms/internal/infrastructure/config"
	"lerms/internal/infrastructure/database"
	"lerms/internal/infrastructure/persistence/seeds"
	"lerms/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed reference data",
		Long:  `Insert the action type vocabulary, permissions, roles, email-role mappings, and agencies. Safe to run repeatedly.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	log := logger.NewLogger()
	log.Infow("seeding reference data", "environment", env)

	if err := seeds.SeedAll(database.Get()); err != nil {
		log.Errorw("seeding failed", "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	log.Infow("seeding completed successfully")
	fmt.Println("Reference data seeded successfully")

	return nil
}
