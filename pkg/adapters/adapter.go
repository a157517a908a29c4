package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// CreatePostInput carries everything an adapter needs for one publish call.
type CreatePostInput struct {
	AccountID         string
	PlatformAccountID string
	AccessToken       string
	MediaRef          string
	Caption           string
}

// CreatePostResult is a platform's answer to a publish call. Some platforms
// publish synchronously; others accept the post and finish asynchronously,
// reporting back by webhook or probe.
type CreatePostResult struct {
	RemoteID    string
	Published   bool
	PublishedAt time.Time
}

// RemoteStatus is the platform-side state of a previously submitted post.
type RemoteStatus string

const (
	RemoteLive       RemoteStatus = "live"
	RemoteProcessing RemoteStatus = "processing"
	RemoteFailed     RemoteStatus = "failed"
	RemoteNotFound   RemoteStatus = "not_found"
)

// ProbeResult is the answer to a status probe.
type ProbeResult struct {
	Status      RemoteStatus
	PublishedAt time.Time
	Reason      string
}

// Adapter is one platform's publish surface. Implementations are thin
// translators: no retries, no rate limiting, no state — the workflow engine
// owns all of that.
type Adapter interface {
	Platform() string
	CreatePost(ctx context.Context, input CreatePostInput) (*CreatePostResult, error)
	Probe(ctx context.Context, accessToken, remoteID string) (*ProbeResult, error)
}

// httpAdapter is the shared HTTP plumbing under the platform adapters.
type httpAdapter struct {
	platform string
	baseURL  string
	client   *http.Client
}

func newHTTPAdapter(platform, baseURL string, client *http.Client) httpAdapter {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return httpAdapter{platform: platform, baseURL: baseURL, client: client}
}

// postJSON sends an authenticated JSON request and decodes the response into
// out. Non-2xx responses are translated into the adapter error taxonomy.
func (a httpAdapter) postJSON(ctx context.Context, path, accessToken string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	return a.do(req, out)
}

func (a httpAdapter) getJSON(ctx context.Context, path, accessToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	return a.do(req, out)
}

func (a httpAdapter) do(req *http.Request, out any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		if req.Context().Err() != nil {
			return &Error{Kind: KindTimeout, Platform: a.platform, Message: "request cancelled or timed out", Err: err}
		}
		return &Error{Kind: KindTransient, Platform: a.platform, Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return &Error{Kind: KindTransient, Platform: a.platform, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return a.classifyStatus(resp, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindTransient, Platform: a.platform, Message: "malformed response body", Err: err}
		}
	}
	return nil
}

// classifyStatus maps an HTTP error response onto the error taxonomy.
func (a httpAdapter) classifyStatus(resp *http.Response, body []byte) error {
	msg := fmt.Sprintf("%s returned %d: %s", a.platform, resp.StatusCode, truncate(body, 200))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &Error{Kind: KindAuthRevoked, Platform: a.platform, StatusCode: resp.StatusCode, Message: msg}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &Error{
			Kind:       KindRateLimited,
			Platform:   a.platform,
			StatusCode: resp.StatusCode,
			Message:    msg,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	case resp.StatusCode >= 500:
		return &Error{Kind: KindTransient, Platform: a.platform, StatusCode: resp.StatusCode, Message: msg}
	default:
		return &Error{Kind: KindPermanent, Platform: a.platform, StatusCode: resp.StatusCode, Message: msg}
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
