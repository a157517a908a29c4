package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// InstagramAdapter publishes through the Instagram content publishing API.
// Publishing is asynchronous: the create call returns a container id and the
// final state arrives by webhook or probe.
type InstagramAdapter struct {
	httpAdapter
}

// NewInstagramAdapter creates a new InstagramAdapter
func NewInstagramAdapter(baseURL string, client *http.Client) *InstagramAdapter {
	return &InstagramAdapter{newHTTPAdapter("instagram", baseURL, client)}
}

// Platform implements Adapter
func (a *InstagramAdapter) Platform() string { return "instagram" }

type instagramPublishRequest struct {
	MediaURL string `json:"media_url"`
	Caption  string `json:"caption,omitempty"`
}

type instagramPublishResponse struct {
	ID string `json:"id"`
}

// CreatePost implements Adapter
func (a *InstagramAdapter) CreatePost(ctx context.Context, input CreatePostInput) (*CreatePostResult, error) {
	var resp instagramPublishResponse
	path := fmt.Sprintf("/%s/media_publish", url.PathEscape(input.PlatformAccountID))
	err := a.postJSON(ctx, path, input.AccessToken, instagramPublishRequest{
		MediaURL: input.MediaRef,
		Caption:  input.Caption,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.ID == "" {
		return nil, &Error{Kind: KindTransient, Platform: a.platform, Message: "publish response missing media id"}
	}
	return &CreatePostResult{RemoteID: resp.ID}, nil
}

type instagramStatusResponse struct {
	StatusCode string `json:"status_code"` // FINISHED, IN_PROGRESS, ERROR, EXPIRED
	Timestamp  string `json:"timestamp,omitempty"`
}

// Probe implements Adapter
func (a *InstagramAdapter) Probe(ctx context.Context, accessToken, remoteID string) (*ProbeResult, error) {
	var resp instagramStatusResponse
	path := fmt.Sprintf("/%s?fields=status_code,timestamp", url.PathEscape(remoteID))
	if err := a.getJSON(ctx, path, accessToken, &resp); err != nil {
		if ae := Classify(err); ae.StatusCode == http.StatusNotFound {
			return &ProbeResult{Status: RemoteNotFound}, nil
		}
		return nil, err
	}

	switch resp.StatusCode {
	case "FINISHED":
		publishedAt := time.Now()
		if ts, err := time.Parse(time.RFC3339, resp.Timestamp); err == nil {
			publishedAt = ts
		}
		return &ProbeResult{Status: RemoteLive, PublishedAt: publishedAt}, nil
	case "IN_PROGRESS":
		return &ProbeResult{Status: RemoteProcessing}, nil
	default:
		return &ProbeResult{Status: RemoteFailed, Reason: resp.StatusCode}, nil
	}
}
