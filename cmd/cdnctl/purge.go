package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
	"github.com/at-ishikawa/cdnconnector/internal/manifest"
	"github.com/at-ishikawa/cdnconnector/internal/runner"
)

func newPurgeAllCommand() *cobra.Command {
	var jobID string
	cmd := &cobra.Command{
		Use:   "purge-all",
		Short: "Purge every cached object of the configured service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, a.Close())
			}()

			if jobID == "" {
				jobID = runner.NewJobID()
			}
			result, err := a.runner.PurgeAll(cmd.Context(), jobID)
			if err != nil {
				return fmt.Errorf("purge all for job %s: %w", jobID, err)
			}
			_, err = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "job %s: purge all %s\n", jobID, result.Status)
			return err
		},
	}
	cmd.Flags().StringVar(&jobID, "job-id", "", "Job id used for job logs. Generated when empty")
	return cmd
}

func newPurgeCommand() *cobra.Command {
	var jobID string
	var file string
	cmd := &cobra.Command{
		Use:   "purge [url...]",
		Short: "Purge URLs and warm the ones that were purged",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			request, err := purgeRequestFromArgs(file, jobID, args)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, a.Close())
			}()

			resolvedJobID, report := a.runner.Purge(cmd.Context(), request)
			return printPurgeReport(cmd.OutOrStdout(), resolvedJobID, report)
		},
	}
	cmd.Flags().StringVar(&jobID, "job-id", "", "Job id used for job logs. Overrides the manifest's job_id")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML manifest with job_id and urls")
	return cmd
}

func purgeRequestFromArgs(file, jobID string, args []string) (cdn.PurgeRequest, error) {
	var request cdn.PurgeRequest
	switch {
	case file != "" && len(args) > 0:
		return cdn.PurgeRequest{}, errors.New("urls and --file cannot be used together")
	case file != "":
		loaded, err := manifest.LoadPurgeRequest(file)
		if err != nil {
			return cdn.PurgeRequest{}, fmt.Errorf("manifest.LoadPurgeRequest > %w", err)
		}
		request = loaded
	case len(args) > 0:
		if err := manifest.ValidateURLs(args); err != nil {
			return cdn.PurgeRequest{}, err
		}
		request.URLs = args
	default:
		return cdn.PurgeRequest{}, errors.New("either urls or --file is required")
	}
	if jobID != "" {
		request.JobID = jobID
	}
	return request, nil
}

func printPurgeReport(w io.Writer, jobID string, report cdn.PurgeReport) error {
	if _, err := fmt.Fprintf(w, "job %s: %d purged, %d failed\n", jobID, len(report.Purged), len(report.Failed)); err != nil {
		return err
	}
	green := color.New(color.FgGreen)
	for _, target := range report.Purged {
		if _, err := green.Fprintf(w, "  purged  %s\n", target); err != nil {
			return err
		}
	}
	red := color.New(color.FgRed)
	for _, failed := range report.Failed {
		if _, err := red.Fprintf(w, "  failed  %s: %v\n", failed.URL, failed.Err); err != nil {
			return err
		}
	}
	return nil
}

func newWarmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "warm <url>",
		Short: "Request a URL so the edge caches it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if err := manifest.ValidateURLs(args); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer func() {
				err = errors.Join(err, a.Close())
			}()

			response, err := a.runner.Warm(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d bytes)\n", args[0], response.Status(), len(response.String()))
			return err
		},
	}
}
