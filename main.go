package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"assetledger/config"
	"assetledger/database"
	"assetledger/logging"
	"assetledger/report"
	"assetledger/store"
)

var rootCmd = &cobra.Command{
	Use:          "assetledger",
	Short:        "IT asset ledger with monthly cost reporting",
	Long:         `Assetledger tracks a tenant's IT assets and produces monthly cost, incident and KPI reports.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, reportCmd, kpiCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app is what every subcommand needs once configuration is loaded.
type app struct {
	cfg   *config.Config
	log   *zap.Logger
	store *store.Store
	mode  report.Mode
}

func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, "assetledger")
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	mode, err := report.ParseMode(cfg.AttributionMode)
	if err != nil {
		return nil, err
	}

	if err := database.Init(cfg.DatabaseURL, cfg.AdminPassword, log); err != nil {
		return nil, err
	}

	return &app{
		cfg:   cfg,
		log:   log,
		store: store.New(database.GetDB()),
		mode:  mode,
	}, nil
}
