package adapters

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// TikTokAdapter publishes through the TikTok content posting API. Video
// processing is asynchronous; the publish id resolves later.
type TikTokAdapter struct {
	httpAdapter
}

// NewTikTokAdapter creates a new TikTokAdapter
func NewTikTokAdapter(baseURL string, client *http.Client) *TikTokAdapter {
	return &TikTokAdapter{newHTTPAdapter("tiktok", baseURL, client)}
}

// Platform implements Adapter
func (a *TikTokAdapter) Platform() string { return "tiktok" }

type tiktokPublishRequest struct {
	VideoURL string `json:"video_url"`
	Title    string `json:"title,omitempty"`
}

type tiktokPublishResponse struct {
	Data struct {
		PublishID string `json:"publish_id"`
	} `json:"data"`
}

// CreatePost implements Adapter
func (a *TikTokAdapter) CreatePost(ctx context.Context, input CreatePostInput) (*CreatePostResult, error) {
	var resp tiktokPublishResponse
	err := a.postJSON(ctx, "/v2/post/publish/video/init/", input.AccessToken, tiktokPublishRequest{
		VideoURL: input.MediaRef,
		Title:    input.Caption,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Data.PublishID == "" {
		return nil, &Error{Kind: KindTransient, Platform: a.platform, Message: "publish response missing publish_id"}
	}
	return &CreatePostResult{RemoteID: resp.Data.PublishID}, nil
}

type tiktokStatusResponse struct {
	Data struct {
		Status     string `json:"status"` // PUBLISH_COMPLETE, PROCESSING, FAILED
		FailReason string `json:"fail_reason,omitempty"`
	} `json:"data"`
}

// Probe implements Adapter
func (a *TikTokAdapter) Probe(ctx context.Context, accessToken, remoteID string) (*ProbeResult, error) {
	var resp tiktokStatusResponse
	path := "/v2/post/publish/status/fetch/?publish_id=" + url.QueryEscape(remoteID)
	if err := a.getJSON(ctx, path, accessToken, &resp); err != nil {
		if ae := Classify(err); ae.StatusCode == http.StatusNotFound {
			return &ProbeResult{Status: RemoteNotFound}, nil
		}
		return nil, err
	}

	switch resp.Data.Status {
	case "PUBLISH_COMPLETE":
		return &ProbeResult{Status: RemoteLive, PublishedAt: time.Now()}, nil
	case "PROCESSING", "PROCESSING_DOWNLOAD", "PROCESSING_UPLOAD":
		return &ProbeResult{Status: RemoteProcessing}, nil
	default:
		return &ProbeResult{Status: RemoteFailed, Reason: resp.Data.FailReason}, nil
	}
}
