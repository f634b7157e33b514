package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/viant/policybin/logging"
	"github.com/viant/policybin/service"
)

// app carries state shared by subcommands of one root command
type app struct {
	configPath string
	envFile    string
	logLevel   string
	config     *service.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "policybin",
		Short:         "Policy document bins for accreditation evidence",
		Long:          "policybin classifies policy documents into evidence indicator bins, stores them\nin an object store and keeps a JSON metadata snapshot of every bin.",
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config yaml (optional)")
	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the config")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override: debug|info|warn|error")
	cmd.PersistentPreRunE = a.init

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newReindexCmd(a))
	cmd.AddCommand(newClassifyCmd(a))
	return cmd
}

func (a *app) init(_ *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %v: %w", a.envFile, err)
		}
	}
	cfg, err := service.LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	a.config = cfg
	a.logger = logging.Setup(cfg.Log)
	return nil
}

// requireCredential fails when the store write credential is absent from the environment
func (a *app) requireCredential() error {
	name := a.config.Store.CredentialEnv
	if name == "" {
		return nil
	}
	if os.Getenv(name) == "" {
		return fmt.Errorf("%v environment variable is not set", name)
	}
	return nil
}
