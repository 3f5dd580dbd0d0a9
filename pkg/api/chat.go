package api

import "time"

const (
	ActionTrending      = "trending"
	ActionResearch      = "research"
	ActionScript        = "script"
	ActionResearchPaper = "research-paper"
	ActionVideoIdea     = "video-idea"
)

type ChatRequest struct {
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
	Query          string `json:"query"`
	ContextAction  string `json:"contextAction"`
}

// Video is one normalized video-search result.
type Video struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoID     string `json:"videoId"`
	PublishTime string `json:"publishTime"`
}

type TrendingResponse struct {
	TrendingTopics []string `json:"trendingTopics"`
	TrendingVideos []Video  `json:"trendingVideos"`
	TrendingShorts []Video  `json:"trendingShorts"`
}

type IdeaResponse struct {
	Idea string `json:"idea"`
}

type TextResponse struct {
	Response string `json:"response"`
}

type ChatListRequest struct {
	UserID string `schema:"userId,required"`
}

type ChatEntry struct {
	ConversationID string    `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChatsResponse struct {
	Chats []ChatEntry `json:"chats"`
}

type MemoriesRequest struct {
	UserID         string `schema:"userId,required"`
	ConversationID string `schema:"conversationId,required"`
}

type Memory struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

type MemoriesResponse struct {
	Memories []Memory `json:"memories"`
}
