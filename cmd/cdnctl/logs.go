package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cdnconnector/internal/config"
	"github.com/at-ishikawa/cdnconnector/internal/database"
	"github.com/at-ishikawa/cdnconnector/internal/joblog"
	"github.com/at-ishikawa/cdnconnector/schemas"
)

var errMySQLBackendRequired = errors.New("job logs are only stored with the mysql job_log backend")

func newLogsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logs <job id>",
		Short: "Show the stored logs of a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.JobLog.Backend != config.JobLogBackendMySQL {
				return errMySQLBackendRequired
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				err = errors.Join(err, db.Close())
			}()

			entries, err := joblog.NewDBLogger(db).FindByJobID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, entry := range entries {
				printer := color.New(color.Reset)
				if entry.Level == joblog.LevelDurable {
					printer = color.New(color.FgYellow)
				}
				if _, err := printer.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					entry.CreatedAt.Format(time.RFC3339),
					entry.Level,
					entry.Message,
				); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the job log tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open > %w", err)
			}
			defer func() {
				err = errors.Join(err, db.Close())
			}()

			return database.Migrate(cmd.Context(), db, schemas.Migrations)
		},
	}
}
