package adapters

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// XAdapter publishes through the X (Twitter) v2 API. Tweets publish
// synchronously: a 2xx create response means the post is live.
type XAdapter struct {
	httpAdapter
}

// NewXAdapter creates a new XAdapter
func NewXAdapter(baseURL string, client *http.Client) *XAdapter {
	return &XAdapter{newHTTPAdapter("x", baseURL, client)}
}

// Platform implements Adapter
func (a *XAdapter) Platform() string { return "x" }

type xCreateRequest struct {
	Text  string `json:"text"`
	Media struct {
		MediaIDs []string `json:"media_ids,omitempty"`
	} `json:"media,omitempty"`
}

type xCreateResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CreatePost implements Adapter
func (a *XAdapter) CreatePost(ctx context.Context, input CreatePostInput) (*CreatePostResult, error) {
	req := xCreateRequest{Text: input.Caption}
	if input.MediaRef != "" {
		req.Media.MediaIDs = []string{input.MediaRef}
	}

	var resp xCreateResponse
	if err := a.postJSON(ctx, "/2/tweets", input.AccessToken, req, &resp); err != nil {
		return nil, err
	}
	if resp.Data.ID == "" {
		return nil, &Error{Kind: KindTransient, Platform: a.platform, Message: "create response missing tweet id"}
	}
	return &CreatePostResult{
		RemoteID:    resp.Data.ID,
		Published:   true,
		PublishedAt: time.Now(),
	}, nil
}

type xLookupResponse struct {
	Data struct {
		ID        string `json:"id"`
		CreatedAt string `json:"created_at"`
	} `json:"data"`
	Errors []struct {
		Title string `json:"title"`
	} `json:"errors,omitempty"`
}

// Probe implements Adapter
func (a *XAdapter) Probe(ctx context.Context, accessToken, remoteID string) (*ProbeResult, error) {
	var resp xLookupResponse
	path := "/2/tweets/" + url.PathEscape(remoteID) + "?tweet.fields=created_at"
	if err := a.getJSON(ctx, path, accessToken, &resp); err != nil {
		if ae := Classify(err); ae.StatusCode == http.StatusNotFound {
			return &ProbeResult{Status: RemoteNotFound}, nil
		}
		return nil, err
	}
	if resp.Data.ID == "" {
		return &ProbeResult{Status: RemoteNotFound}, nil
	}

	publishedAt := time.Now()
	if ts, err := time.Parse(time.RFC3339, resp.Data.CreatedAt); err == nil {
		publishedAt = ts
	}
	return &ProbeResult{Status: RemoteLive, PublishedAt: publishedAt}, nil
}
