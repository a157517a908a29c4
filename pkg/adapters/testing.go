package adapters

import "context"

// MockAdapter is a configurable Adapter for tests.
type MockAdapter struct {
	PlatformName   string
	CreatePostFunc func(ctx context.Context, input CreatePostInput) (*CreatePostResult, error)
	ProbeFunc      func(ctx context.Context, accessToken, remoteID string) (*ProbeResult, error)

	CreateCalls []CreatePostInput
	ProbeCalls  []string
}

// Platform implements Adapter
func (m *MockAdapter) Platform() string {
	if m.PlatformName == "" {
		return "mock"
	}
	return m.PlatformName
}

// CreatePost implements Adapter
func (m *MockAdapter) CreatePost(ctx context.Context, input CreatePostInput) (*CreatePostResult, error) {
	m.CreateCalls = append(m.CreateCalls, input)
	if m.CreatePostFunc != nil {
		return m.CreatePostFunc(ctx, input)
	}
	return &CreatePostResult{RemoteID: "mock-remote-id"}, nil
}

// Probe implements Adapter
func (m *MockAdapter) Probe(ctx context.Context, accessToken, remoteID string) (*ProbeResult, error) {
	m.ProbeCalls = append(m.ProbeCalls, remoteID)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, accessToken, remoteID)
	}
	return &ProbeResult{Status: RemoteLive}, nil
}
