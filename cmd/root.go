package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mechanic_payroll/config"
	"mechanic_payroll/database"
	"mechanic_payroll/utils"
)

var configPath string

// NewRootCommand builds the mechanic-payroll command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mechanic-payroll",
		Short:         "Member, earnings and salary records for the shop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML config file")

	rootCmd.AddCommand(newServeCommand(), newInitAdminCommand(), newSalaryCommand())
	return rootCmd
}

func Execute() error {
	return NewRootCommand().Execute()
}

// state is the process-wide state shared by every subcommand.
type state struct {
	cfg    config.Config
	logger *zap.Logger
	db     *gorm.DB
}

func setup() (*state, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err))
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &state{cfg: cfg, logger: logger, db: db}, nil
}

func (r *state) close() {
	if err := database.Close(r.db); err != nil {
		r.logger.Warn("Failed to close database", zap.Error(err))
	}
	_ = r.logger.Sync()
}
