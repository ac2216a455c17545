package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"reach_backend/internals/configs"
	database "reach_backend/internals/databases"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}
		log := configs.NewLogger(cfg.Logging)

		db, err := database.Connect(cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info().Int("models", len(database.Models())).Msg("migration complete")
		return nil
	},
}
