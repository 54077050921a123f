package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "todo-lists.com/todo-lists/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := config.NewLogger(cfg.LogLevel, cfg.LogEncoding)
		defer func() { _ = logger.Sync() }()

		database, err := config.NewDatabaseClient(cfg.DBDriver, cfg.DatabaseDSN, cfg.LogLevel == "debug")
		if err != nil {
			return err
		}
		defer func() { _ = config.CloseDatabase(database) }()

		if err := config.Migrate(database); err != nil {
			return err
		}

		logger.Info("schema migrated", zap.String("driver", cfg.DBDriver))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
