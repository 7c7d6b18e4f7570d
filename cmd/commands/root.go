package commands

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "pigeonwatch",
	Short: "Daily market-cap posting bot",
	Long: `pigeonwatch tracks a token's market cap on DexScreener and posts one
status update per day to X, counting the days until the target cap is
reached. Posts can be mirrored to a Telegram chat.`,
	Version: "1.0.0",
	// Runtime failures (bad config, dead API) are not usage errors;
	// printing help on them buries the actual message.
	SilenceUsage: true,
}

// Execute sets up logging and runs the CLI.
func Execute() error {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default configs/config.yaml)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(onceCmd)
	rootCmd.AddCommand(statusCmd)
}

func configPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}
