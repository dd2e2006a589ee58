package cmd

import (
	"pizzabot/internal/adapters/out/persistence"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the order store schema",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.Open(cfg.Store(), logger)
	if err != nil {
		return err
	}
	defer func() { _ = persistence.Close(db) }()

	if err = persistence.Migrate(db); err != nil {
		return err
	}
	logger.Info().Str("driver", cfg.DBDriver).Msg("schema migrated")
	return nil
}
