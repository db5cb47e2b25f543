package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// StatusSuccess is the status reported by a successful logout.
const StatusSuccess = "success"

// ErrLogout wraps transport and decoding failures of a logout call.
var ErrLogout = errors.New("logout failed")

// Result is the outcome reported by the auth service.
type Result struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// OK reports whether the logout succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Service terminates the current session.
type Service interface {
	Logout(ctx context.Context) (Result, error)
}

// HTTPService calls POST {baseURL}/auth/logout.
type HTTPService struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPService builds an auth client for the LinkUp API.
func NewHTTPService(baseURL, token string, client *http.Client) *HTTPService {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPService{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

// Logout implements Service.
func (s *HTTPService) Logout(ctx context.Context) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/auth/logout", nil)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrLogout, err)
	}
	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrLogout, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, fmt.Errorf("%w: read body: %v", ErrLogout, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("%w: unexpected status %s", ErrLogout, resp.Status)
	}
	var result Result
	if len(strings.TrimSpace(string(body))) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return Result{}, fmt.Errorf("%w: decode: %v", ErrLogout, err)
	}
	return result, nil
}
