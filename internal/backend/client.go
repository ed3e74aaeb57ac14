// Package backend talks to the upstream content API: one endpoint for form
// payloads, one for spreadsheet uploads. Both endpoints authenticate with a
// per-endpoint function code passed as a query parameter. This package owns
// all network-facing behavior; validation and transformation never touch it.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/Grandhi-Suri-Babu/admin-app/internal/transform"
)

// HTTPClient is the subset of http.Client the backend client needs. Tests
// inject a stub implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Response is the decoded JSON body of a successful backend answer.
type Response map[string]interface{}

// Client submits payloads and files to the content backend.
type Client struct {
	baseURL        string
	formEndpoint   string
	formCode       string
	uploadEndpoint string
	uploadCode     string
	httpClient     HTTPClient
}

// Config holds the backend endpoints and their function codes.
type Config struct {
	BaseURL        string
	FormEndpoint   string
	FormCode       string
	UploadEndpoint string
	UploadCode     string
}

// NewClient creates a backend client. When httpClient is nil the default
// http.Client is used; the transport's default timeout applies, the client
// adds none of its own.
func NewClient(cfg Config, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		formEndpoint:   cfg.FormEndpoint,
		formCode:       cfg.FormCode,
		uploadEndpoint: cfg.UploadEndpoint,
		uploadCode:     cfg.UploadCode,
		httpClient:     httpClient,
	}
}

// SubmitForm posts the wire payload as JSON. A non-2xx answer is returned as
// an *APIError with the classified message; transport failures propagate
// wrapped and unclassified.
func (c *Client) SubmitForm(ctx context.Context, payload transform.Payload) (Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(c.formEndpoint, c.formCode), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.send(req)
}

// UploadFile posts a single file as multipart form data under the field name
// "file". The content is forwarded as an opaque blob; nothing here inspects
// it. Failure classification matches SubmitForm.
func (c *Client) UploadFile(ctx context.Context, filename string, reader io.Reader) (Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, reader); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL(c.uploadEndpoint, c.uploadCode), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req)
}

func (c *Client) send(req *http.Request) (Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, NewAPIError(resp.StatusCode)
	}

	var data Response
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return data, nil
}

func (c *Client) endpointURL(endpoint, code string) string {
	u := c.baseURL + endpoint
	if code != "" {
		u += "?code=" + url.QueryEscape(code)
	}
	return u
}
