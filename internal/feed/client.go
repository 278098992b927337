package feed

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

// APIClient fetches captured messages from the capture service over HTTP.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new feed client.
func NewClient(baseURL string) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the FeedClient interface.
var _ FeedClient = (*APIClient)(nil)

// GetMessages fetches messages observed at or after the given time.
func (c *APIClient) GetMessages(since time.Time) ([]Message, error) {
	endpoint := fmt.Sprintf("%s/messages?since=%s", c.BaseURL, url.QueryEscape(since.Format(time.RFC3339)))
	log.Debug("Fetching messages from capture service", "url", endpoint)

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("error fetching messages from capture service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("capture service returned status %d: %s", resp.StatusCode, string(body))
	}

	var messages []Message
	if err := json.NewDecoder(resp.Body).Decode(&messages); err != nil {
		return nil, fmt.Errorf("error decoding message feed: %w", err)
	}

	log.Info("Fetched messages from capture service", "count", len(messages), "since", since)
	return messages, nil
}
