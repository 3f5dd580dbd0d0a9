package youtube

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/go-resty/resty/v2"

	"akari-backend/pkg/api"
)

const (
	defaultBaseURL = "https://www.googleapis.com"
	searchPath     = "/youtube/v3/search"
)

// Searcher issues keyword searches against an external video catalog.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) []api.Video
	SearchShorts(ctx context.Context, query string, maxResults int) []api.Video
}

type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(apiKey string) *Client {
	return &Client{
		http:   resty.New().SetBaseURL(defaultBaseURL),
		apiKey: apiKey,
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishTime string `json:"publishTime"`
		} `json:"snippet"`
	} `json:"items"`
}

// Search returns up to maxResults videos matching the query, ordered by
// view count. Failures are logged and degrade to an empty result set.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []api.Video {
	return c.search(ctx, query, maxResults)
}

// SearchShorts biases results toward short-form content by appending a
// "shorts" token to the query. This is a heuristic, not a guarantee.
func (c *Client) SearchShorts(ctx context.Context, query string, maxResults int) []api.Video {
	return c.search(ctx, query+" shorts", maxResults)
}

func (c *Client) search(ctx context.Context, query string, maxResults int) []api.Video {
	var body searchResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        c.apiKey,
			"q":          query,
			"part":       "snippet",
			"type":       "video",
			"order":      "viewCount",
			"maxResults": strconv.Itoa(maxResults),
		}).
		SetResult(&body).
		Get(searchPath)
	if err != nil {
		slog.Error("error searching videos", "query", query, "error", err)
		return []api.Video{}
	}
	if res.IsError() {
		slog.Error("video search returned error status", "query", query, "status", res.StatusCode())
		return []api.Video{}
	}

	videos := make([]api.Video, 0, len(body.Items))
	for _, item := range body.Items {
		if len(videos) == maxResults {
			break
		}
		videos = append(videos, api.Video{
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			VideoID:     item.ID.VideoID,
			PublishTime: item.Snippet.PublishTime,
		})
	}
	return videos
}
