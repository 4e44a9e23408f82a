package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Sigi3012/uppy/internal/version"
)

// Client handles the upload transaction against the configured host.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a new upload client. token is used verbatim as the
// Authorization header value; no scheme prefix is added.
func NewClient(baseURL string, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// OutcomeKind classifies the result of a single upload attempt.
type OutcomeKind int

const (
	// Success carries the raw response body for downstream parsing.
	Success OutcomeKind = iota
	// IOFailure means the multipart body could not be built from the file.
	IOFailure
	// TransportFailure means the HTTP call never completed.
	TransportFailure
	// ClientError is any completed 4xx response.
	ClientError
	// ServerError is any completed 5xx response.
	ServerError
)

// Outcome is the result of one upload: exactly one kind per call. Body is
// set only for Success (read eagerly so no live network handle escapes),
// Err only for IOFailure and TransportFailure, Status only for ClientError
// and ServerError.
type Outcome struct {
	Kind   OutcomeKind
	Body   []byte
	Err    error
	Status int
}

// Upload POSTs the file at path as a single multipart form field named
// "file" to {BaseURL}/api/upload. The whole file is buffered into the
// request body; there are no retries and no timeout beyond the client's
// default.
func (c *Client) Upload(ctx context.Context, path string) Outcome {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return Outcome{Kind: IOFailure, Err: err}
	}

	file, err := os.Open(path)
	if err != nil {
		return Outcome{Kind: IOFailure, Err: err}
	}
	if _, err := io.Copy(part, file); err != nil {
		file.Close()
		return Outcome{Kind: IOFailure, Err: err}
	}
	file.Close()

	if err := writer.Close(); err != nil {
		return Outcome{Kind: IOFailure, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/upload", &body)
	if err != nil {
		return Outcome{Kind: TransportFailure, Err: err}
	}

	req.Header.Set("Authorization", c.Token)
	req.Header.Set("Format", "RANDOM")
	req.Header.Set("Embed", "true")
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Outcome{Kind: TransportFailure, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return Outcome{Kind: ClientError, Status: resp.StatusCode}
	case resp.StatusCode >= 500:
		return Outcome{Kind: ServerError, Status: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Kind: TransportFailure, Err: err}
	}

	return Outcome{Kind: Success, Body: respBody}
}
