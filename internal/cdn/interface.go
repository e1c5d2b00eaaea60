// Package cdn defines the contract between job processing and a CDN provider.
package cdn

import (
	"context"

	"resty.dev/v3"
)

//go:generate mockgen -source=interface.go -destination=../mocks/cdn/mock_interface.go -package=mock_cdn

// Connector issues cache purges, warms and edge dictionary updates against a CDN provider.
type Connector interface {
	PurgeAll(ctx context.Context, jobID string, creds Credentials) (PurgeAllResult, error)
	Purge(ctx context.Context, jobID string, urls []string) PurgeReport
	Warm(ctx context.Context, url string) (*resty.Response, error)
	UpsertEdgeDictionaryItem(ctx context.Context, item DictionaryItem, dictionaryID string, creds Credentials) error
}

// JobLogger records messages against a job.
// Save is a durable write and reports its failure; Info is fire-and-forget.
type JobLogger interface {
	Save(ctx context.Context, jobID string, message string) error
	Info(ctx context.Context, jobID string, message string)
}

// CredentialsSource resolves the credentials used for provider API calls.
type CredentialsSource interface {
	Credentials(ctx context.Context) (Credentials, error)
}
