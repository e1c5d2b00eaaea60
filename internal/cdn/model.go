package cdn

import (
	"errors"
	"fmt"
)

// Credentials scope provider API calls to one service.
type Credentials struct {
	ServiceID string `json:"service_id" yaml:"service_id"`
	APIKey    string `json:"service_key" yaml:"service_key"`
}

// ErrInvalidCredentials is wrapped by Validate failures.
var ErrInvalidCredentials = errors.New("invalid credentials")

func (c Credentials) Validate() error {
	var errs []error
	if c.ServiceID == "" {
		errs = append(errs, errors.New("service id is required"))
	}
	if c.APIKey == "" {
		errs = append(errs, errors.New("api key is required"))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidCredentials, errors.Join(errs...))
}

// PurgeRequest is a job's ordered list of URLs to invalidate.
type PurgeRequest struct {
	JobID string   `yaml:"job_id"`
	URLs  []string `yaml:"urls"`
}

// DictionaryItem is one key/value entry of an edge dictionary.
type DictionaryItem struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type PurgeAllResult struct {
	Status string `json:"status"`
}

// FailedURL pairs a URL with the reason its purge failed.
type FailedURL struct {
	URL string
	Err error
}

// PurgeReport is the outcome of a best-effort purge, in input order.
type PurgeReport struct {
	Purged []string
	Failed []FailedURL
}
