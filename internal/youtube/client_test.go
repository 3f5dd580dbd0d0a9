package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const searchBody = `{
	"items": [
		{
			"id": {"videoId": "abc123"},
			"snippet": {
				"title": "Top 10 CATS videos",
				"description": "compilation",
				"publishTime": "2024-05-01T00:00:00Z"
			}
		},
		{
			"id": {"videoId": "def456"},
			"snippet": {
				"title": "Cats and dogs",
				"description": ""
			}
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient("test-key")
	client.http.SetBaseURL(srv.URL)
	return client
}

func TestSearch(t *testing.T) {
	var gotQuery, gotType, gotOrder string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotType = r.URL.Query().Get("type")
		gotOrder = r.URL.Query().Get("order")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody)) //nolint:errcheck
	})

	videos := client.Search(context.Background(), "cats", 5)

	assert.Equal(t, "cats", gotQuery)
	assert.Equal(t, "video", gotType)
	assert.Equal(t, "viewCount", gotOrder)

	assert.Len(t, videos, 2)
	assert.Equal(t, "Top 10 CATS videos", videos[0].Title)
	assert.Equal(t, "abc123", videos[0].VideoID)
	assert.Equal(t, "2024-05-01T00:00:00Z", videos[0].PublishTime)
	assert.Equal(t, "", videos[1].PublishTime)
}

func TestSearchShortsAppendsToken(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": []}`)) //nolint:errcheck
	})

	videos := client.SearchShorts(context.Background(), "cats", 5)

	assert.Equal(t, "cats shorts", gotQuery)
	assert.Empty(t, videos)
	assert.NotNil(t, videos)
}

func TestSearchTruncatesToMaxResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody)) //nolint:errcheck
	})

	videos := client.Search(context.Background(), "cats", 1)
	assert.Len(t, videos, 1)
}

func TestSearchErrorStatusDegradesToEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	videos := client.Search(context.Background(), "cats", 5)
	assert.Empty(t, videos)
	assert.NotNil(t, videos)
}

func TestSearchTransportFailureDegradesToEmpty(t *testing.T) {
	client := NewClient("test-key")
	client.http.SetBaseURL("http://127.0.0.1:0")

	videos := client.Search(context.Background(), "cats", 5)
	assert.Empty(t, videos)
	assert.NotNil(t, videos)
}
