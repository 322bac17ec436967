// Package sanity reads catalog content from the Sanity HTTP query API.
package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var (
	projectIDChars = regexp.MustCompile(`[^a-z0-9-]`)
	datasetChars   = regexp.MustCompile(`[^a-z0-9_-]`)
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	// BaseURL overrides the computed API host, e.g. for tests.
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// SanitizeProjectID lower-cases id and keeps only [a-z0-9-].
func SanitizeProjectID(id string) (string, error) {
	s := projectIDChars.ReplaceAllString(strings.ToLower(id), "")
	if s == "" {
		return "", errors.New("sanity: invalid projectId after sanitization")
	}
	return s, nil
}

// SanitizeDataset lower-cases ds and keeps only [a-z0-9_-].
func SanitizeDataset(ds string) (string, error) {
	s := datasetChars.ReplaceAllString(strings.ToLower(ds), "")
	if s == "" {
		return "", errors.New("sanity: invalid dataset after sanitization")
	}
	return s, nil
}

func NewClient(cfg Config) (*Client, error) {
	projectID, err := SanitizeProjectID(cfg.ProjectID)
	if err != nil {
		return nil, err
	}
	dataset, err := SanitizeDataset(cfg.Dataset)
	if err != nil {
		return nil, err
	}
	version := strings.TrimPrefix(strings.TrimSpace(cfg.APIVersion), "v")
	if version == "" {
		version = "2024-06-01"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		host := "api.sanity.io"
		// authenticated reads bypass the CDN
		if cfg.UseCDN && cfg.Token == "" {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", projectID, host)
	}

	return &Client{
		endpoint:   fmt.Sprintf("%s/v%s/data/query/%s", base, version, dataset),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
}

// Query runs a GROQ query and decodes "result" into out.
// Params are sent as $name=<json> query parameters, never spliced into groq.
func (c *Client) Query(ctx context.Context, groq string, params map[string]any, out any) error {
	v := url.Values{}
	v.Set("query", groq)
	for name, val := range params {
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("sanity: encode param %s: %w", name, err)
		}
		v.Set("$"+name, string(b))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+v.Encode(), nil)
	if err != nil {
		return fmt.Errorf("sanity: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sanity: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return fmt.Errorf("sanity: read body: %w", err)
	}

	var qr queryResponse
	if err := json.Unmarshal(body, &qr); err != nil {
		return fmt.Errorf("sanity: status %d: decode body: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || qr.Error != nil {
		msg := strings.TrimSpace(string(body))
		if qr.Error != nil {
			msg = qr.Error.Description
		}
		return fmt.Errorf("sanity: query failed with status %d: %s", resp.StatusCode, msg)
	}

	if out == nil || len(qr.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(qr.Result, out); err != nil {
		return fmt.Errorf("sanity: decode result: %w", err)
	}
	return nil
}
