package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxBodyBytes = 8 << 20

// HTTPSource fetches the directory from the LinkUp API.
type HTTPSource struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPSource builds a source that issues GET {baseURL}/users.
func NewHTTPSource(baseURL, token string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

// Endpoint returns the URL used for the directory listing.
func (s *HTTPSource) Endpoint() string {
	return s.baseURL + "/users"
}

// FetchAllUsers implements Source.
func (s *HTTPSource) FetchAllUsers(ctx context.Context) ([]UserRecord, error) {
	endpoint := s.Endpoint()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Source: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &FetchError{Source: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: endpoint, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	records, err := decodeRecords(body)
	if err != nil {
		return nil, &FetchError{Source: endpoint, Err: err}
	}
	return records, nil
}

// decodeRecords accepts a bare array or an envelope of the form {"data": [...]}.
func decodeRecords(body []byte) ([]UserRecord, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response body")
	}
	if trimmed[0] == '[' {
		var records []UserRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("decode users: %w", err)
		}
		return records, nil
	}
	var envelope struct {
		Data []UserRecord `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return envelope.Data, nil
}
