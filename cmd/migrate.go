package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cppla/ncnews/config"
	"github.com/cppla/ncnews/utils"
)

var printSchema bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the topics, users, articles and comments tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		if printSchema {
			_, err := cmd.OutOrStdout().Write([]byte(config.Schema()))
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := utils.InitLogger(cfg); err != nil {
			return err
		}
		db, err := config.InitDatabase(cfg, utils.NewGormLogger(utils.Logger, cfg.LogLevel, cfg.DBSlowThreshold))
		if err != nil {
			return err
		}
		defer config.CloseDatabase(db)

		if err := config.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		utils.Sugar.Info("schema applied")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&printSchema, "print", false, "print the schema instead of applying it")
}
