package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
	"github.com/at-ishikawa/cdnconnector/internal/manifest"
	"github.com/at-ishikawa/cdnconnector/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(t.Context(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "cdnctl", cmd.Use)
	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"purge-all", "purge", "warm", "dictionary", "logs", "migrate"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("environment"))
}

func TestEnvironmentFlag_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    EnvironmentFlag
		wantErr bool
	}{
		{name: "prod", value: "prod", want: EnvironmentProd},
		{name: "stage", value: "stage", want: EnvironmentStage},
		{name: "unknown", value: "production", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got EnvironmentFlag
			err := got.Set(tt.value)
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid environment")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.value, got.String())
			assert.Equal(t, "Environment", got.Type())
		})
	}
}

func TestPurgeRequestFromArgs(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "purge.yml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("job_id: from-file\nurls:\n  - https://example.com/a\n"), 0644))

	tests := []struct {
		name    string
		file    string
		jobID   string
		args    []string
		want    cdn.PurgeRequest
		wantErr string
	}{
		{
			name: "urls from arguments",
			args: []string{"https://example.com/a", "https://example.com/b"},
			want: cdn.PurgeRequest{URLs: []string{"https://example.com/a", "https://example.com/b"}},
		},
		{
			name: "manifest file",
			file: manifestPath,
			want: cdn.PurgeRequest{JobID: "from-file", URLs: []string{"https://example.com/a"}},
		},
		{
			name:  "job id flag overrides the manifest",
			file:  manifestPath,
			jobID: "from-flag",
			want:  cdn.PurgeRequest{JobID: "from-flag", URLs: []string{"https://example.com/a"}},
		},
		{
			name:    "both sources",
			file:    manifestPath,
			args:    []string{"https://example.com/a"},
			wantErr: "cannot be used together",
		},
		{
			name:    "nothing to purge",
			wantErr: "either urls or --file is required",
		},
		{
			name:    "invalid url",
			args:    []string{"example.com/a"},
			wantErr: "scheme must be http or https",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := purgeRequestFromArgs(tt.file, tt.jobID, tt.args)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionaryManifestFromArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    manifest.DictionaryManifest
		wantErr bool
	}{
		{
			name: "single item",
			args: []string{"42", "k", "v"},
			want: manifest.DictionaryManifest{
				DictionaryID: "42",
				Items:        []cdn.DictionaryItem{{Key: "k", Value: "v"}},
			},
		},
		{
			name:    "missing value",
			args:    []string{"42", "k"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dictionaryManifestFromArgs("", tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintPurgeReport(t *testing.T) {
	var buf bytes.Buffer
	err := printPurgeReport(&buf, "job-1", cdn.PurgeReport{
		Purged: []string{"https://example.com/a"},
		Failed: []cdn.FailedURL{{URL: "https://example.com/b", Err: errors.New("status 500")}},
	})
	require.NoError(t, err)
	assert.Equal(t, `job job-1: 1 purged, 1 failed
  purged  https://example.com/a
  failed  https://example.com/b: status 500
`, buf.String())
}

func TestCommands_AgainstFakeProvider(t *testing.T) {
	type request struct {
		method string
		path   string
		body   string
	}

	tests := []struct {
		name       string
		args       []string
		wantOutput string
		wantCalls  []request
	}{
		{
			name:       "purge-all",
			args:       []string{"purge-all", "--job-id", "job-1"},
			wantOutput: "job job-1: purge all ok\n",
			wantCalls: []request{
				{method: http.MethodPost, path: "/service/svc-1/purge_all"},
			},
		},
		{
			name:       "dictionary upsert",
			args:       []string{"dictionary", "upsert", "42", "k", "v"},
			wantOutput: "dictionary 42: 1/1 items upserted\n",
			wantCalls: []request{
				{method: http.MethodPut, path: "/service/svc-1/dictionary/42/item/k", body: `{"item_value":"v"}`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []request
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var body bytes.Buffer
				_, _ = body.ReadFrom(r.Body)
				calls = append(calls, request{method: r.Method, path: r.URL.Path, body: compactJSON(t, body.Bytes())})
				assert.Equal(t, testutil.APIKey, r.Header.Get("Fastly-Key"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"status":"ok"}`))
			}))
			defer server.Close()

			dir := t.TempDir()
			path := testutil.SetupTestConfig(t, dir, server.URL)

			var stdout bytes.Buffer
			cmd := newRootCommand()
			cmd.SetOut(&stdout)
			cmd.SetArgs(append([]string{"--config", path}, tt.args...))
			require.NoError(t, cmd.Execute())

			assert.Equal(t, tt.wantOutput, stdout.String())
			assert.Equal(t, tt.wantCalls, calls)

			exported, err := os.ReadFile(filepath.Join(dir, "cdn.prom"))
			require.NoError(t, err)
			assert.Contains(t, string(exported), "cdn_requests_total")
		})
	}
}

func compactJSON(t *testing.T, body []byte) string {
	t.Helper()
	if len(body) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return string(body)
	}
	return buf.String()
}
