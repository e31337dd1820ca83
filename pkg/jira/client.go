package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/johnquangdev/meeting-actions/errors"
	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
)

const serviceName = "Jira"

// DefaultTimeout bounds every tracker call when no client is supplied
const DefaultTimeout = 30 * time.Second

// Client is a minimal Jira Cloud REST v3 client authenticated with basic auth
type Client struct {
	baseURL  string
	email    string
	apiToken string
	client   *http.Client
}

// NewClient creates a Jira client for one tracker config.
// Pass a nil httpClient to get a client with DefaultTimeout.
func NewClient(cfg entities.TrackerConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:  cfg.BaseURL(),
		email:    cfg.Email,
		apiToken: cfg.APIToken,
		client:   httpClient,
	}
}

// do sends the request and decodes a 2xx JSON body into out.
// Non-2xx responses become SERVICE errors carrying the raw body.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("jira %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("jira %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.ErrService(serviceName, resp.StatusCode, string(raw))
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("jira %s %s: decode response: %w", method, path, err)
	}
	return nil
}
