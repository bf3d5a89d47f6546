package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

func (m *MockProvider) ProviderName() string { return "mock" }

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockImage is a canned response for the MockImageGenerator.
type MockImage struct {
	Data     []byte
	MIMEType string
	Err      error
}

// MockImageGenerator is a deterministic ImageGenerator for testing.
// Canned images are returned in FIFO order. When the queue is empty and a
// Fallback is set, the fallback is returned instead.
type MockImageGenerator struct {
	mu       sync.Mutex
	images   []MockImage
	Fallback *MockImage
	Calls    []ImageRequest
}

// NewMockImageGenerator creates a MockImageGenerator with the given images.
func NewMockImageGenerator(images ...MockImage) *MockImageGenerator {
	return &MockImageGenerator{images: images}
}

// GenerateImage returns the next canned image, the fallback, or
// ErrProviderUnavailable if neither is available.
func (m *MockImageGenerator) GenerateImage(_ context.Context, req ImageRequest) (*ImageResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	var img MockImage
	switch {
	case len(m.images) > 0:
		img = m.images[0]
		m.images = m.images[1:]
	case m.Fallback != nil:
		img = *m.Fallback
	default:
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	if img.Err != nil {
		return nil, img.Err
	}
	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return &ImageResponse{Data: img.Data, MIMEType: mimeType, Model: "mock-image"}, nil
}

// ImageModelID returns "mock-image".
func (m *MockImageGenerator) ImageModelID() string {
	return "mock-image"
}

func (m *MockImageGenerator) ProviderName() string { return "mock" }

// AddImage appends a canned image to the queue.
func (m *MockImageGenerator) AddImage(img MockImage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images = append(m.images, img)
}

// CallCount returns the number of GenerateImage calls made.
func (m *MockImageGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
