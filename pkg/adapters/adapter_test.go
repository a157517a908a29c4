package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		headers    map[string]string
		wantKind   Kind
		wantRetry  bool
		retryAfter time.Duration
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantKind: KindAuthRevoked},
		{name: "forbidden", status: http.StatusForbidden, wantKind: KindAuthRevoked},
		{
			name:       "rate limited with retry-after",
			status:     http.StatusTooManyRequests,
			headers:    map[string]string{"Retry-After": "120"},
			wantKind:   KindRateLimited,
			wantRetry:  true,
			retryAfter: 120 * time.Second,
		},
		{name: "server error", status: http.StatusBadGateway, wantKind: KindTransient, wantRetry: true},
		{name: "bad request", status: http.StatusBadRequest, wantKind: KindPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			adapter := NewXAdapter(srv.URL, srv.Client())
			_, err := adapter.CreatePost(context.Background(), CreatePostInput{Caption: "hello"})
			require.Error(t, err)

			ae := Classify(err)
			assert.Equal(t, tt.wantKind, ae.Kind)
			assert.Equal(t, tt.wantRetry, ae.Retryable())
			if tt.retryAfter > 0 {
				assert.Equal(t, tt.retryAfter, ae.RetryAfter)
			}
		})
	}
}

func TestXCreatePostPublishesSynchronously(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/tweets", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"1790000000000000000"}}`))
	}))
	defer srv.Close()

	adapter := NewXAdapter(srv.URL, srv.Client())
	result, err := adapter.CreatePost(context.Background(), CreatePostInput{
		AccessToken: "token-123",
		Caption:     "hello world",
	})
	require.NoError(t, err)

	assert.Equal(t, "1790000000000000000", result.RemoteID)
	assert.True(t, result.Published)
}

func TestInstagramCreatePostIsAsync(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"container-42"}`))
	}))
	defer srv.Close()

	adapter := NewInstagramAdapter(srv.URL, srv.Client())
	result, err := adapter.CreatePost(context.Background(), CreatePostInput{
		PlatformAccountID: "ig-user-1",
		AccessToken:       "tok",
		MediaRef:          "https://cdn.example.com/v.mp4",
	})
	require.NoError(t, err)

	assert.Equal(t, "container-42", result.RemoteID)
	assert.False(t, result.Published, "instagram publishes asynchronously")
}

func TestInstagramProbe(t *testing.T) {
	tests := []struct {
		name string
		body string
		want RemoteStatus
	}{
		{name: "finished", body: `{"status_code":"FINISHED","timestamp":"2026-08-01T12:00:00Z"}`, want: RemoteLive},
		{name: "in progress", body: `{"status_code":"IN_PROGRESS"}`, want: RemoteProcessing},
		{name: "error", body: `{"status_code":"ERROR"}`, want: RemoteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			adapter := NewInstagramAdapter(srv.URL, srv.Client())
			result, err := adapter.Probe(context.Background(), "tok", "container-42")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Status)
		})
	}
}

func TestClassifyWrapsUnknownErrors(t *testing.T) {
	ae := Classify(assert.AnError)
	assert.Equal(t, KindTransient, ae.Kind)
	assert.True(t, ae.Retryable())
}

func TestParseRetryAfterFormats(t *testing.T) {
	assert.Equal(t, 30*time.Second, parseRetryAfter("30"))
	assert.Equal(t, time.Duration(0), parseRetryAfter(""))
	assert.Equal(t, time.Duration(0), parseRetryAfter("garbage"))

	future := time.Now().Add(2 * time.Minute).UTC().Format(http.TimeFormat)
	got := parseRetryAfter(future)
	assert.Greater(t, got, time.Minute)
}
