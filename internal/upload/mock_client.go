package upload

import (
	"context"
	"errors"
	"sync"
)

// ErrMockUploadFailure is returned when the mock client is configured to fail
var ErrMockUploadFailure = errors.New("mock upload failure")

// MockClient is a Client implementation for tests
type MockClient struct {
	mu         sync.Mutex
	Uploaded   [][]StagedFile
	Results    []Result
	ShouldFail bool
	// EmptyResults makes Upload succeed while returning no results,
	// the "no URL returned" shape
	EmptyResults bool
}

// NewMockClient creates a new MockClient returning a single canned URL
func NewMockClient() *MockClient {
	return &MockClient{
		Results: []Result{{URL: "https://cdn.test/uploads/image-1.png"}},
	}
}

// Upload records the staged files and returns the canned results
func (c *MockClient) Upload(ctx context.Context, files []StagedFile) ([]Result, error) {
	if c.ShouldFail {
		return nil, ErrMockUploadFailure
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Uploaded = append(c.Uploaded, files)
	if c.EmptyResults {
		return nil, nil
	}
	return c.Results, nil
}
