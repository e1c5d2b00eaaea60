package main

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"resty.dev/v3"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
	"github.com/at-ishikawa/cdnconnector/internal/cdn/fastly"
	"github.com/at-ishikawa/cdnconnector/internal/config"
	"github.com/at-ishikawa/cdnconnector/internal/database"
	"github.com/at-ishikawa/cdnconnector/internal/joblog"
	"github.com/at-ishikawa/cdnconnector/internal/metrics"
	"github.com/at-ishikawa/cdnconnector/internal/runner"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if environment != "" {
		cfg.Environment = environment.String()
	}
	return cfg, nil
}

// app holds the collaborators a command needs and releases them on Close.
type app struct {
	cfg        *config.Config
	runner     *runner.Runner
	httpClient *resty.Client
	db         *sqlx.DB
	dbLogger   *joblog.DBLogger
	registry   *prometheus.Registry
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{
		cfg:      cfg,
		registry: prometheus.NewRegistry(),
	}
	if err := metrics.Register(a.registry); err != nil {
		return nil, err
	}

	var logger cdn.JobLogger
	switch cfg.JobLog.Backend {
	case config.JobLogBackendMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		a.db = db
		a.dbLogger = joblog.NewDBLogger(db)
		logger = a.dbLogger
	default:
		logger = joblog.NewSlogLogger(nil)
	}

	httpClient, err := fastly.NewHTTPClient(fastly.HTTPClientConfig{
		Timeout:     cfg.Fastly.Timeout(),
		EnableHTTP2: cfg.Fastly.HTTP2,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("fastly.NewHTTPClient > %w", err), a.Close())
	}
	a.httpClient = httpClient

	connector := fastly.NewConnector(httpClient, logger, fastly.Options{
		APIBaseURL:  cfg.Fastly.APIBaseURL,
		Environment: cfg.Environment,
		Debug:       cfg.Fastly.Debug,
	})
	a.runner = runner.New(connector, cfg.Fastly, runner.RetryPolicy{
		Attempts: cfg.Retry.Attempts,
		Delay:    cfg.Retry.Delay(),
	})
	return a, nil
}

// Close drains pending job log writes, exports metrics and closes connections.
func (a *app) Close() error {
	var errs []error
	if a.dbLogger != nil {
		errs = append(errs, a.dbLogger.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.httpClient != nil {
		errs = append(errs, a.httpClient.Close())
	}
	if a.cfg.Metrics.Textfile != "" {
		errs = append(errs, metrics.WriteTextfile(a.cfg.Metrics.Textfile, a.registry))
	}
	return errors.Join(errs...)
}
