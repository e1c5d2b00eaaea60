package fastly

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/sync/errgroup"
	"resty.dev/v3"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
	"github.com/at-ishikawa/cdnconnector/internal/metrics"
)

const (
	DefaultAPIBaseURL = "https://api.fastly.com"

	MethodPurge = "PURGE"

	environmentLabelWidth = 15

	maxRedirects = 10
)

var _ cdn.Connector = (*Connector)(nil)

type HTTPClientConfig struct {
	Timeout     time.Duration
	EnableHTTP2 bool
}

// NewHTTPClient builds the resty client shared by the provider API and the purged origins.
func NewHTTPClient(cfg HTTPClientConfig) (*resty.Client, error) {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if cfg.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("http2.ConfigureTransport > %w", err)
		}
	}

	client := resty.NewWithClient(&http.Client{Transport: transport})
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return client, nil
}

type Options struct {
	APIBaseURL  string
	Environment string
	Debug       bool
}

type Connector struct {
	httpClient  *resty.Client
	logger      cdn.JobLogger
	apiBaseURL  string
	environment string
	debug       bool
}

// NewConnector builds a Connector on top of httpClient.
// The redirect policy of httpClient is replaced so that a redirected PURGE is reported as is.
func NewConnector(httpClient *resty.Client, logger cdn.JobLogger, opts Options) *Connector {
	httpClient.SetRedirectPolicy(purgeRedirectPolicy(), resty.FlexibleRedirectPolicy(maxRedirects))

	apiBaseURL := opts.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = DefaultAPIBaseURL
	}
	return &Connector{
		httpClient:  httpClient,
		logger:      logger,
		apiBaseURL:  strings.TrimRight(apiBaseURL, "/"),
		environment: opts.Environment,
		debug:       opts.Debug,
	}
}

// purgeRedirectPolicy stops at the first redirect of a PURGE.
// Following it would turn the purge into a GET of another location.
func purgeRedirectPolicy() resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(_ *http.Request, via []*http.Request) error {
		if len(via) > 0 && via[0].Method == MethodPurge {
			return http.ErrUseLastResponse
		}
		return nil
	})
}

func (connector *Connector) apiHeaders(creds cdn.Credentials) map[string]string {
	headers := map[string]string{
		"Fastly-Key":   creds.APIKey,
		"Accept":       "application/json",
		"Content-Type": "application/json",
	}
	if connector.debug {
		headers["Fastly-Debug"] = "1"
	}
	return headers
}

// PurgeAll invalidates every cached object of the service.
// A failure is saved to the job log before it is returned.
func (connector *Connector) PurgeAll(ctx context.Context, jobID string, creds cdn.Credentials) (cdn.PurgeAllResult, error) {
	result, err := connector.purgeAll(ctx, creds)
	if err != nil {
		label := fmt.Sprintf("%-*s", environmentLabelWidth, "("+connector.environment+")")
		message := fmt.Sprintf("%serror in requestPurgeAll for job %s: %v", label, jobID, err)
		if saveErr := connector.logger.Save(ctx, jobID, message); saveErr != nil {
			slog.Default().Error("failed to save the job log",
				"jobID", jobID,
				"error", saveErr,
			)
		}
		return cdn.PurgeAllResult{}, err
	}
	return result, nil
}

func (connector *Connector) purgeAll(ctx context.Context, creds cdn.Credentials) (cdn.PurgeAllResult, error) {
	endpoint := fmt.Sprintf("%s/service/%s/purge_all", connector.apiBaseURL, url.PathEscape(creds.ServiceID))
	if err := creds.Validate(); err != nil {
		return cdn.PurgeAllResult{}, &cdn.UpstreamError{Op: http.MethodPost, URL: endpoint, Err: err}
	}

	start := time.Now()
	response, err := connector.httpClient.R().
		SetContext(ctx).
		SetHeaders(connector.apiHeaders(creds)).
		SetResult(&cdn.PurgeAllResult{}).
		Post(endpoint)
	err = checkResponse(http.MethodPost, endpoint, response, err)
	metrics.RecordRequest(metrics.OperationPurgeAll, err, time.Since(start).Seconds())
	if err != nil {
		return cdn.PurgeAllResult{}, err
	}

	result, ok := response.Result().(*cdn.PurgeAllResult)
	if !ok || result == nil {
		return cdn.PurgeAllResult{}, nil
	}
	return *result, nil
}

// Purge invalidates every URL concurrently and then warms the ones that were purged.
// Individual failures never fail the call; they are returned in the report.
func (connector *Connector) Purge(ctx context.Context, jobID string, urls []string) cdn.PurgeReport {
	outcomes := make([]error, len(urls))
	var purgeGroup errgroup.Group
	for i, target := range urls {
		purgeGroup.Go(func() error {
			outcomes[i] = connector.purgeURL(ctx, target)
			return nil
		})
	}
	_ = purgeGroup.Wait()

	var report cdn.PurgeReport
	for i, target := range urls {
		if outcomes[i] != nil {
			slog.Default().Debug("failed to purge the url",
				"jobID", jobID,
				"url", target,
				"error", outcomes[i],
			)
			report.Failed = append(report.Failed, cdn.FailedURL{URL: target, Err: outcomes[i]})
			continue
		}
		report.Purged = append(report.Purged, target)
	}
	metrics.RecordPurgedURLs(len(report.Purged), len(report.Failed))
	connector.logger.Info(ctx, jobID, fmt.Sprintf("Total urls purged %d", len(report.Purged)))

	var warmGroup errgroup.Group
	for _, target := range report.Purged {
		warmGroup.Go(func() error {
			_, _ = connector.Warm(ctx, target)
			return nil
		})
	}
	_ = warmGroup.Wait()

	return report
}

func (connector *Connector) purgeURL(ctx context.Context, target string) error {
	start := time.Now()
	response, err := connector.httpClient.R().
		SetContext(ctx).
		Execute(MethodPurge, target)
	err = checkResponse(MethodPurge, target, response, err)
	metrics.RecordRequest(metrics.OperationPurge, err, time.Since(start).Seconds())
	return err
}

// Warm requests the URL so the edge caches it again.
func (connector *Connector) Warm(ctx context.Context, target string) (*resty.Response, error) {
	start := time.Now()
	response, err := connector.httpClient.R().
		SetContext(ctx).
		Get(target)
	err = checkResponse(http.MethodGet, target, response, err)
	metrics.RecordRequest(metrics.OperationWarm, err, time.Since(start).Seconds())
	if err != nil {
		return nil, err
	}
	return response, nil
}

type dictionaryItemRequest struct {
	ItemValue string `json:"item_value"`
}

// UpsertEdgeDictionaryItem creates or replaces one entry of an edge dictionary.
func (connector *Connector) UpsertEdgeDictionaryItem(
	ctx context.Context,
	item cdn.DictionaryItem,
	dictionaryID string,
	creds cdn.Credentials,
) error {
	endpoint := fmt.Sprintf("%s/service/%s/dictionary/%s/item/%s",
		connector.apiBaseURL,
		url.PathEscape(creds.ServiceID),
		url.PathEscape(dictionaryID),
		url.PathEscape(item.Key),
	)
	if err := creds.Validate(); err != nil {
		return &cdn.UpstreamError{Op: http.MethodPut, URL: endpoint, Err: err}
	}

	start := time.Now()
	response, err := connector.httpClient.R().
		SetContext(ctx).
		SetHeaders(connector.apiHeaders(creds)).
		SetBody(dictionaryItemRequest{ItemValue: item.Value}).
		Put(endpoint)
	err = checkResponse(http.MethodPut, endpoint, response, err)
	metrics.RecordRequest(metrics.OperationUpsertDictionaryItem, err, time.Since(start).Seconds())
	return err
}

func checkResponse(method, target string, response *resty.Response, err error) error {
	if err != nil {
		return &cdn.UpstreamError{Op: method, URL: target, Err: err}
	}
	slog.Default().Debug("cdn response",
		"method", method,
		"url", target,
		"status", response.StatusCode(),
	)
	if response.IsError() || response.StatusCode() >= http.StatusMultipleChoices {
		return &cdn.UpstreamError{
			Op:         method,
			URL:        target,
			StatusCode: response.StatusCode(),
			Err:        &cdn.StatusError{StatusCode: response.StatusCode(), Body: response.String()},
		}
	}
	return nil
}
