package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// StagedFile is a file staged for upload
type StagedFile struct {
	Name    string
	Content []byte
}

// Result contains the publicly retrievable URL of an uploaded file
type Result struct {
	URL string `json:"url"`
}

// Client is a client for the external file-upload collaborator
type Client interface {
	// Upload sends the staged files under the named upload profile and
	// returns one result per file, or no results on failure
	Upload(ctx context.Context, files []StagedFile) ([]Result, error)
}

// HTTPClient implements Client using HTTP multipart uploads
type HTTPClient struct {
	baseURL    string
	profile    string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP upload client
func NewHTTPClient(baseURL, profile string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		profile: profile,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Upload sends the staged files to the upload service
func (c *HTTPClient) Upload(ctx context.Context, files []StagedFile) ([]Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to build upload body: %w", err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, fmt.Errorf("failed to build upload body: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload body: %w", err)
	}

	url := fmt.Sprintf("%s/api/upload/%s", c.baseURL, c.profile)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upload service returned status %d: %s", resp.StatusCode, string(b))
	}

	var results []Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return results, nil
}
