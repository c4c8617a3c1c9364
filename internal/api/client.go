package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the hosted detection backend. Every authenticated call
// carries the bearer token; every response body is decoded defensively, so a
// non-JSON body never surfaces as a decode error.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New creates a Client for the given backend. token may be empty for the
// login call. The timeout bounds every request end to end.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// errorDetail is the error body shape the backend uses.
type errorDetail struct {
	Detail string `json:"detail"`
}

// do executes one JSON request. body is marshalled when non-nil; out is
// filled from a 2xx response when non-nil. A 2xx body that fails to decode
// leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send applies common headers, executes the request, and maps the response
// onto the client error taxonomy.
func (c *Client) send(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrSessionExpired
	case resp.StatusCode == http.StatusPaymentRequired:
		return ErrTokensExhausted
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		var detail errorDetail
		_ = json.Unmarshal(respBody, &detail)
		return &APIError{Status: resp.StatusCode, Detail: detail.Detail}
	}

	if out != nil {
		// Decode failures yield an empty result, not an error.
		_ = json.Unmarshal(respBody, out)
	}
	return nil
}

// Login exchanges credentials for a session. No bearer token is attached.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", payload, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, &APIError{Status: http.StatusOK, Detail: "login response did not include a token"}
	}
	return &resp, nil
}

// Predict submits text for analysis.
func (c *Client) Predict(ctx context.Context, text string) (*Prediction, error) {
	var resp Prediction
	payload := map[string]string{"text": text}
	if err := c.do(ctx, http.MethodPost, "/predict", payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExtractFile uploads a document and returns its extracted text. The request
// is multipart, so no JSON content type is set.
func (c *Client) ExtractFile(ctx context.Context, filename string, content io.Reader) (*ExtractResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("building upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract-file", &buf)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp ExtractResult
	if err := c.send(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyHistory fetches the caller's past scans. A 2xx response that is not a
// JSON array yields a nil slice, which renderers treat as "unable to load".
func (c *Client) MyHistory(ctx context.Context) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := c.do(ctx, http.MethodGet, "/my-history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
