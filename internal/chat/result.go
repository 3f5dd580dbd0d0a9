package chat

import (
	"encoding/json"
	"log/slog"

	"akari-backend/pkg/api"
)

type ResultKind string

const (
	KindText     ResultKind = "text"
	KindIdea     ResultKind = "idea"
	KindTrending ResultKind = "trending"
)

// Result is the outcome of one handled chat action: either plain generated
// text or a structured aggregation. Callers switch on Kind instead of
// inspecting payload shapes at runtime.
type Result struct {
	Kind     ResultKind
	Text     string
	Trending *api.TrendingResponse
}

func NewTextResult(text string) Result {
	return Result{Kind: KindText, Text: text}
}

func NewIdeaResult(text string) Result {
	return Result{Kind: KindIdea, Text: text}
}

func NewTrendingResult(trending api.TrendingResponse) Result {
	return Result{Kind: KindTrending, Trending: &trending}
}

// Envelope is the JSON body returned to the client.
func (r Result) Envelope() any {
	switch r.Kind {
	case KindIdea:
		return api.IdeaResponse{Idea: r.Text}
	case KindTrending:
		return r.Trending
	default:
		return api.TextResponse{Response: r.Text}
	}
}

// Persisted is the serialized form stored as the turn's response text.
func (r Result) Persisted() string {
	if r.Kind != KindTrending {
		return r.Text
	}
	serialized, err := json.MarshalIndent(r.Trending, "", "  ")
	if err != nil {
		slog.Error("error serializing trending result", "error", err)
		return ""
	}
	return string(serialized)
}
