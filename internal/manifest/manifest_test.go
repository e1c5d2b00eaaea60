package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
)

func TestReadPurgeRequest(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        cdn.PurgeRequest
		wantErrorIn string
	}{
		{
			name: "job id and urls",
			content: `job_id: deploy-1234
urls:
  - https://www.example.com/
  - https://www.example.com/docs/index.html
`,
			want: cdn.PurgeRequest{
				JobID: "deploy-1234",
				URLs: []string{
					"https://www.example.com/",
					"https://www.example.com/docs/index.html",
				},
			},
		},
		{
			name: "job id is optional",
			content: `urls:
  - http://example.com/a
`,
			want: cdn.PurgeRequest{URLs: []string{"http://example.com/a"}},
		},
		{
			name:        "empty file",
			content:     "",
			wantErrorIn: "manifest is empty",
		},
		{
			name:        "no urls",
			content:     "job_id: deploy-1234\n",
			wantErrorIn: "urls must not be empty",
		},
		{
			name: "relative url",
			content: `urls:
  - https://www.example.com/
  - /docs/index.html
`,
			wantErrorIn: "urls[1]",
		},
		{
			name: "unknown field",
			content: `job_id: deploy-1234
url: https://www.example.com/
`,
			wantErrorIn: "field url not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadPurgeRequest(strings.NewReader(tt.content))
			if tt.wantErrorIn != "" {
				assert.ErrorContains(t, err, tt.wantErrorIn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadDictionaryManifest(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        DictionaryManifest
		wantErrorIn string
	}{
		{
			name: "items",
			content: `dictionary_id: "42"
items:
  - key: redirect_home
    value: /en/home
  - key: maintenance
    value: "false"
`,
			want: DictionaryManifest{
				DictionaryID: "42",
				Items: []cdn.DictionaryItem{
					{Key: "redirect_home", Value: "/en/home"},
					{Key: "maintenance", Value: "false"},
				},
			},
		},
		{
			name: "missing dictionary id",
			content: `items:
  - key: a
    value: b
`,
			wantErrorIn: "dictionary_id is required",
		},
		{
			name:        "no items",
			content:     "dictionary_id: \"42\"\nitems: []\n",
			wantErrorIn: "items must not be empty",
		},
		{
			name:        "items omitted",
			content:     "dictionary_id: \"42\"\n",
			wantErrorIn: "items must not be empty",
		},
		{
			name: "missing key",
			content: `dictionary_id: "42"
items:
  - value: b
`,
			wantErrorIn: "items[0]: key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadDictionaryManifest(strings.NewReader(tt.content))
			if tt.wantErrorIn != "" {
				assert.ErrorContains(t, err, tt.wantErrorIn)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadPurgeRequest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "purge.yml")
	require.NoError(t, os.WriteFile(path, []byte("job_id: j\nurls:\n  - https://example.com/\n"), 0644))

	got, err := LoadPurgeRequest(path)
	require.NoError(t, err)
	assert.Equal(t, cdn.PurgeRequest{JobID: "j", URLs: []string{"https://example.com/"}}, got)

	_, err = LoadPurgeRequest(filepath.Join(dir, "missing.yml"))
	assert.ErrorContains(t, err, "os.Open")
}

func TestLoadDictionaryManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dictionary.yml")
	require.NoError(t, os.WriteFile(path, []byte("dictionary_id: d\nitems:\n  - key: k\n    value: v\n"), 0644))

	got, err := LoadDictionaryManifest(path)
	require.NoError(t, err)
	assert.Equal(t, DictionaryManifest{DictionaryID: "d", Items: []cdn.DictionaryItem{{Key: "k", Value: "v"}}}, got)
}

func TestValidateURLs(t *testing.T) {
	assert.NoError(t, ValidateURLs([]string{"https://example.com/a", "http://example.com/b"}))

	err := ValidateURLs([]string{"ftp://example.com/a", "https://example.com/b", "https:///c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme must be http or https")
	assert.Contains(t, err.Error(), "host is required")
}
