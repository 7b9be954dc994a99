package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cppla/ncnews/config"
	"github.com/cppla/ncnews/routes"
	"github.com/cppla/ncnews/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		return err
	}
	defer func() { _ = utils.Logger.Sync() }()

	db, err := config.InitDatabase(cfg, utils.NewGormLogger(utils.Logger, cfg.LogLevel, cfg.DBSlowThreshold))
	if err != nil {
		return err
	}

	r := routes.SetupRouter(cfg, db)

	srv := utils.NewServer(":"+cfg.AppPort, r, cfg.ReadTimeout, cfg.WriteTimeout)
	srv.OnShutdown(func() {
		if err := config.CloseDatabase(db); err != nil {
			utils.Sugar.Errorf("close database: %v", err)
		}
	})

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := srv.ListenAndServe(); err != nil {
		_ = config.CloseDatabase(db)
		return err
	}
	return nil
}
