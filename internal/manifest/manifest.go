// Package manifest reads purge and edge dictionary job files.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/cdnconnector/internal/cdn"
)

// DictionaryManifest lists the entries to upsert into one edge dictionary.
type DictionaryManifest struct {
	DictionaryID string               `yaml:"dictionary_id"`
	Items        []cdn.DictionaryItem `yaml:"items"`
}

// ReadPurgeRequest decodes a purge manifest such as
//
//	job_id: deploy-1234
//	urls:
//	  - https://www.example.com/
func ReadPurgeRequest(r io.Reader) (cdn.PurgeRequest, error) {
	var request cdn.PurgeRequest
	if err := decode(r, &request); err != nil {
		return cdn.PurgeRequest{}, err
	}
	if len(request.URLs) == 0 {
		return cdn.PurgeRequest{}, errors.New("urls must not be empty")
	}
	for i, target := range request.URLs {
		if err := validateURL(target); err != nil {
			return cdn.PurgeRequest{}, fmt.Errorf("urls[%d]: %w", i, err)
		}
	}
	return request, nil
}

func ReadDictionaryManifest(r io.Reader) (DictionaryManifest, error) {
	var manifest DictionaryManifest
	if err := decode(r, &manifest); err != nil {
		return DictionaryManifest{}, err
	}
	if manifest.DictionaryID == "" {
		return DictionaryManifest{}, errors.New("dictionary_id is required")
	}
	if len(manifest.Items) == 0 {
		return DictionaryManifest{}, errors.New("items must not be empty")
	}
	for i, item := range manifest.Items {
		if item.Key == "" {
			return DictionaryManifest{}, fmt.Errorf("items[%d]: key is required", i)
		}
	}
	return manifest, nil
}

func LoadPurgeRequest(path string) (cdn.PurgeRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return cdn.PurgeRequest{}, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	request, err := ReadPurgeRequest(f)
	if err != nil {
		return cdn.PurgeRequest{}, fmt.Errorf("%s: %w", path, err)
	}
	return request, nil
}

func LoadDictionaryManifest(path string) (DictionaryManifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return DictionaryManifest{}, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	manifest, err := ReadDictionaryManifest(f)
	if err != nil {
		return DictionaryManifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return manifest, nil
}

func decode(r io.Reader, out any) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("manifest is empty")
		}
		return fmt.Errorf("yaml.Decode > %w", err)
	}
	return nil
}

func validateURL(target string) error {
	parsed, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("url.Parse(%s) > %w", target, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s: scheme must be http or https", target)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s: host is required", target)
	}
	return nil
}

// ValidateURLs checks URLs given outside a manifest, e.g. on the command line.
func ValidateURLs(urls []string) error {
	var errs []error
	for _, target := range urls {
		if err := validateURL(target); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
