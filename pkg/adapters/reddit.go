package adapters

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// RedditAdapter publishes link and media posts through the Reddit API.
// Submissions are synchronous.
type RedditAdapter struct {
	httpAdapter
}

// NewRedditAdapter creates a new RedditAdapter
func NewRedditAdapter(baseURL string, client *http.Client) *RedditAdapter {
	return &RedditAdapter{newHTTPAdapter("reddit", baseURL, client)}
}

// Platform implements Adapter
func (a *RedditAdapter) Platform() string { return "reddit" }

type redditSubmitRequest struct {
	Kind  string `json:"kind"`
	Sr    string `json:"sr"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type redditSubmitResponse struct {
	JSON struct {
		Data struct {
			Name string `json:"name"` // fullname, e.g. t3_abc123
		} `json:"data"`
		Errors [][]string `json:"errors"`
	} `json:"json"`
}

// CreatePost implements Adapter
func (a *RedditAdapter) CreatePost(ctx context.Context, input CreatePostInput) (*CreatePostResult, error) {
	var resp redditSubmitResponse
	err := a.postJSON(ctx, "/api/submit", input.AccessToken, redditSubmitRequest{
		Kind:  "link",
		Sr:    input.PlatformAccountID,
		Title: input.Caption,
		URL:   input.MediaRef,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.JSON.Errors) > 0 {
		return nil, &Error{
			Kind:     KindPermanent,
			Platform: a.platform,
			Message:  "submission rejected: " + flattenRedditErrors(resp.JSON.Errors),
		}
	}
	if resp.JSON.Data.Name == "" {
		return nil, &Error{Kind: KindTransient, Platform: a.platform, Message: "submit response missing fullname"}
	}
	return &CreatePostResult{
		RemoteID:    resp.JSON.Data.Name,
		Published:   true,
		PublishedAt: time.Now(),
	}, nil
}

type redditInfoResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				Name       string  `json:"name"`
				CreatedUTC float64 `json:"created_utc"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// Probe implements Adapter
func (a *RedditAdapter) Probe(ctx context.Context, accessToken, remoteID string) (*ProbeResult, error) {
	var resp redditInfoResponse
	path := "/api/info?id=" + url.QueryEscape(remoteID)
	if err := a.getJSON(ctx, path, accessToken, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data.Children) == 0 {
		return &ProbeResult{Status: RemoteNotFound}, nil
	}
	created := resp.Data.Children[0].Data.CreatedUTC
	return &ProbeResult{
		Status:      RemoteLive,
		PublishedAt: time.Unix(int64(created), 0),
	}, nil
}

func flattenRedditErrors(errs [][]string) string {
	out := ""
	for _, e := range errs {
		for _, part := range e {
			if out != "" {
				out += "; "
			}
			out += part
		}
	}
	return out
}
