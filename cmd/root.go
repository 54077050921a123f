package cmd

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "todo-lists.com/todo-lists/internal/configs"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:           "todo-lists",
	Short:         "Multi-user to-do lists service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("error: %v", err)
		os.Exit(1)
	}
}

// loadConfig reads the dotenv file, if any, and then the process environment.
func loadConfig() (config.Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return config.Config{}, err
		}
		log.Printf("%s file not found, using environment variables", envFile)
	}
	return config.Load()
}
