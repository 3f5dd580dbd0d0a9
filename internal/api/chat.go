package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"akari-backend/internal/chat"
	"akari-backend/internal/database"
	"akari-backend/internal/embeddings"
	"akari-backend/internal/llm"
	"akari-backend/internal/youtube"
	"akari-backend/pkg/api"
)

const (
	maxSearchResults = 5
	topicLimit       = 5
)

// errStreamClosed aborts generation when the consumer stops reading the
// fragment stream.
var errStreamClosed = errors.New("stream closed by consumer")

type ChatService struct {
	db        *gorm.DB
	generator llm.Generator
	videos    youtube.Searcher
	embedder  embeddings.Embedder

	persists sync.WaitGroup
}

func NewChatService(db *gorm.DB, generator llm.Generator, videos youtube.Searcher, embedder embeddings.Embedder) *ChatService {
	return &ChatService{
		db:        db,
		generator: generator,
		videos:    videos,
		embedder:  embedder,
	}
}

func (s *ChatService) AddRoutes(r chi.Router) {
	r.Post("/chat", ChatStreamHandler(s.Chat))
	r.Get("/chats", RestHandler(s.GetChats))
	r.Get("/memories", RestHandler(s.GetMemories))
}

// Wait blocks until pending background persistence has drained. Used on
// shutdown so the last turns still reach the store.
func (s *ChatService) Wait() {
	s.persists.Wait()
}

// Chat handles one query: it loads prior turns, branches on the context
// action, and either returns a JSON envelope (trending, video-idea) or a
// stream of generated text fragments. The resulting turn is persisted
// best-effort after the response is produced.
func (s *ChatService) Chat(r *http.Request) (any, TextStream, error) {
	req, err := ParseRequest[api.ChatRequest](r)
	if err != nil {
		return nil, nil, err
	}

	ctx := r.Context()

	memories, err := database.ListMemories(ctx, s.db, req.UserID, req.ConversationID)
	if err != nil {
		slog.Error("error loading conversation history", "user_id", req.UserID, "conversation_id", req.ConversationID, "error", err)
		return nil, nil, CodedErrorf(http.StatusInternalServerError, "error loading conversation history")
	}

	embedding := s.embedder.Embed(ctx, req.Query)

	switch req.ContextAction {
	case api.ActionTrending:
		result := s.trending(ctx, req.Query)
		s.persist(req, result.Persisted(), embedding)
		return result.Envelope(), nil, nil

	case api.ActionVideoIdea:
		results := s.videos.Search(ctx, req.Query, maxSearchResults)
		idea, err := s.generator.Generate(ctx, chat.VideoIdeaPrompt(req.Query, results))
		if err != nil {
			return nil, nil, CodedErrorf(http.StatusInternalServerError, "error generating video idea")
		}
		result := chat.NewIdeaResult(idea)
		s.persist(req, result.Persisted(), embedding)
		return result.Envelope(), nil, nil
	}

	var prompt string
	switch req.ContextAction {
	case api.ActionScript:
		prompt = chat.ScriptPrompt(chat.Transcript(memories))
	case api.ActionResearch:
		prompt = chat.ResearchPrompt(req.Query)
	case api.ActionResearchPaper:
		prompt = chat.ResearchPaperPrompt(req.Query)
	default:
		prompt = chat.GeneralPrompt(req.Query, chat.Transcript(memories))
	}

	stream := func(yield func(string, error) bool) {
		var full strings.Builder
		err := s.generator.GenerateStream(ctx, prompt, func(fragment string) error {
			full.WriteString(fragment)
			if !yield(fragment, nil) {
				return errStreamClosed
			}
			return nil
		})
		if err != nil {
			if !errors.Is(err, errStreamClosed) {
				yield("", err)
			}
			return
		}
		s.persist(req, chat.NewTextResult(full.String()).Persisted(), embedding)
	}
	return nil, stream, nil
}

func (s *ChatService) trending(ctx context.Context, query string) chat.Result {
	videos := s.videos.Search(ctx, query, maxSearchResults)
	shorts := s.videos.SearchShorts(ctx, query, maxSearchResults)

	titles := make([]string, 0, len(videos)+len(shorts))
	for _, video := range videos {
		titles = append(titles, video.Title)
	}
	for _, video := range shorts {
		titles = append(titles, video.Title)
	}

	return chat.NewTrendingResult(api.TrendingResponse{
		TrendingTopics: chat.TrendingTopics(titles, topicLimit),
		TrendingVideos: videos,
		TrendingShorts: shorts,
	})
}

// persist writes the turn on a background goroutine. The response has
// already been produced at this point, so failures are logged and never
// surfaced to the client.
func (s *ChatService) persist(req api.ChatRequest, response string, embedding pgvector.Vector) {
	metadata, err := json.Marshal(map[string]string{"context_action": req.ContextAction})
	if err != nil {
		metadata = nil
	}

	memory := &database.Memory{
		Id:             uuid.New(),
		UserId:         req.UserID,
		ConversationId: req.ConversationID,
		Query:          req.Query,
		Response:       response,
		Embedding:      embedding,
		Metadata:       datatypes.JSON(metadata),
	}

	s.persists.Add(1)
	go func() {
		defer s.persists.Done()
		if err := database.InsertMemory(context.Background(), s.db, memory); err != nil {
			slog.Error("error persisting conversation turn", "user_id", req.UserID, "conversation_id", req.ConversationID, "error", err)
		}
	}()
}

func (s *ChatService) GetChats(r *http.Request) (any, error) {
	req, err := ParseRequestQueryParams[api.ChatListRequest](r)
	if err != nil {
		return nil, err
	}

	conversations, err := database.ListConversations(r.Context(), s.db, req.UserID)
	if err != nil {
		slog.Error("error listing conversations", "user_id", req.UserID, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error listing conversations")
	}

	chats := make([]api.ChatEntry, 0, len(conversations))
	for _, conversation := range conversations {
		chats = append(chats, api.ChatEntry{
			ConversationID: conversation.ConversationId,
			CreatedAt:      conversation.CreatedAt,
		})
	}
	return api.ChatsResponse{Chats: chats}, nil
}

func (s *ChatService) GetMemories(r *http.Request) (any, error) {
	req, err := ParseRequestQueryParams[api.MemoriesRequest](r)
	if err != nil {
		return nil, err
	}

	memories, err := database.ListMemories(r.Context(), s.db, req.UserID, req.ConversationID)
	if err != nil {
		slog.Error("error listing memories", "user_id", req.UserID, "conversation_id", req.ConversationID, "error", err)
		return nil, CodedErrorf(http.StatusInternalServerError, "error listing memories")
	}

	resp := api.MemoriesResponse{Memories: make([]api.Memory, 0, len(memories))}
	for _, memory := range memories {
		resp.Memories = append(resp.Memories, api.Memory{
			Query:     memory.Query,
			Response:  memory.Response,
			CreatedAt: memory.CreatedAt,
		})
	}
	return resp, nil
}
