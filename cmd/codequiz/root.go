package main

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/saulo-duarte/codequiz-lambda/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "codequiz",
	Short:        "Generate coding-practice questions with an LLM",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("env-file", ".env", "Path to a .env file (ignored when missing)")
	cmd.PersistentFlags().String("provider", "", "LLM provider (overrides LLM_PROVIDER)")
	cmd.PersistentFlags().String("model", "", "Model identifier (overrides LLM_MODEL)")
}

// loadConfig reads the env file, environment and flags, in increasing priority.
func loadConfig(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := godotenv.Load(envFile); err != nil {
		config.Logger.Debugf("no env file at %s, using process environment", envFile)
	}

	loaded, err := config.LoadEnv()
	if err != nil {
		return err
	}

	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		loaded.Provider = strings.ToLower(p)
	}
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		loaded.Model = m
	}
	// --port is only registered on serve.
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		loaded.Port = f.Value.String()
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	config.InitLogger(loaded.LogLevel, loaded.LogFormat)
	cfg = loaded
	return nil
}
