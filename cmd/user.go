package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	config "todo-lists.com/todo-lists/internal/configs"
	repository "todo-lists.com/todo-lists/internal/repositories"
	"todo-lists.com/todo-lists/internal/services"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var (
	userName  string
	userEmail string
)

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user and print its id",
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

		users := services.NewUserService(repository.NewUserRepository(database), logger)
		user, err := users.CreateUser(cmd.Context(), services.UserInput{Name: userName, Email: userEmail})
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), user.ID)
		return err
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "unique email address")
	_ = userCreateCmd.MarkFlagRequired("name")
	_ = userCreateCmd.MarkFlagRequired("email")

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}
