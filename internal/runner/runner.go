// Package runner drives a cdn.Connector on behalf of a job: it resolves
// credentials, names jobs and applies the caller's retry policy.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
)

type RetryPolicy struct {
	Attempts uint
	Delay    time.Duration
}

type Runner struct {
	connector   cdn.Connector
	credentials cdn.CredentialsSource
	retryPolicy RetryPolicy
}

func New(connector cdn.Connector, credentials cdn.CredentialsSource, retryPolicy RetryPolicy) *Runner {
	if retryPolicy.Attempts == 0 {
		retryPolicy.Attempts = 1
	}
	return &Runner{
		connector:   connector,
		credentials: credentials,
		retryPolicy: retryPolicy,
	}
}

// NewJobID returns an identifier for jobs started without one.
func NewJobID() string {
	return uuid.NewString()
}

// isRetryable reports whether a purge of the whole service may succeed when sent again.
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, cdn.ErrInvalidCredentials) {
		return false
	}

	var upstreamErr *cdn.UpstreamError
	if !errors.As(err, &upstreamErr) {
		return false
	}
	// Transport failures carry no status code
	if upstreamErr.StatusCode == 0 {
		return true
	}
	return upstreamErr.StatusCode >= http.StatusInternalServerError ||
		upstreamErr.StatusCode == http.StatusTooManyRequests
}

// PurgeAll retries retryable failures of the connector.
// Every failed attempt saves its own durable job log entry.
func (r *Runner) PurgeAll(ctx context.Context, jobID string) (cdn.PurgeAllResult, error) {
	creds, err := r.credentials.Credentials(ctx)
	if err != nil {
		return cdn.PurgeAllResult{}, fmt.Errorf("credentials.Credentials > %w", err)
	}

	var result cdn.PurgeAllResult
	if err := retry.Do(
		func() error {
			response, err := r.connector.PurgeAll(ctx, jobID, creds)
			if err != nil {
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(r.retryPolicy.Attempts),
		retry.Delay(r.retryPolicy.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Info("Retrying purge all",
				"jobID", jobID,
				"attempt", n+1,
				"error", err,
			)
		}),
	); err != nil {
		return cdn.PurgeAllResult{}, err
	}
	return result, nil
}

// Purge runs a best-effort purge and returns the job id it ran under.
func (r *Runner) Purge(ctx context.Context, request cdn.PurgeRequest) (string, cdn.PurgeReport) {
	jobID := request.JobID
	if jobID == "" {
		jobID = NewJobID()
	}
	return jobID, r.connector.Purge(ctx, jobID, request.URLs)
}

func (r *Runner) Warm(ctx context.Context, target string) (*resty.Response, error) {
	return r.connector.Warm(ctx, target)
}

// UpsertDictionaryItems writes items in order and stops at the first failure.
// It returns how many items were written.
func (r *Runner) UpsertDictionaryItems(ctx context.Context, dictionaryID string, items []cdn.DictionaryItem) (int, error) {
	creds, err := r.credentials.Credentials(ctx)
	if err != nil {
		return 0, fmt.Errorf("credentials.Credentials > %w", err)
	}

	for i, item := range items {
		if err := r.connector.UpsertEdgeDictionaryItem(ctx, item, dictionaryID, creds); err != nil {
			return i, fmt.Errorf("upsert %s: %w", item.Key, err)
		}
	}
	return len(items), nil
}
