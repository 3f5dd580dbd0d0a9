package database

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ListMemories returns every turn for the (user, conversation) pair,
// oldest first. The result is empty, not an error, when none exist.
func ListMemories(ctx context.Context, db *gorm.DB, userId, conversationId string) ([]Memory, error) {
	var memories []Memory
	err := db.WithContext(ctx).
		Where("user_id = ? AND conversation_id = ?", userId, conversationId).
		Order("created_at ASC").
		Find(&memories).
		Error
	return memories, err
}

// InsertMemory persists one turn. Turns are never updated or deleted.
func InsertMemory(ctx context.Context, db *gorm.DB, memory *Memory) error {
	return db.WithContext(ctx).Create(memory).Error
}

type ConversationRef struct {
	ConversationId string
	CreatedAt      time.Time
}

// ListConversations returns the distinct conversations seen for a user,
// most recent first. The underlying query yields one row per turn, so
// duplicates are dropped keeping the first occurrence in descending order,
// i.e. the latest turn wins.
func ListConversations(ctx context.Context, db *gorm.DB, userId string) ([]ConversationRef, error) {
	var rows []ConversationRef
	err := db.WithContext(ctx).
		Model(&Memory{}).
		Select("conversation_id", "created_at").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rows))
	conversations := make([]ConversationRef, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.ConversationId]; ok {
			continue
		}
		seen[row.ConversationId] = struct{}{}
		conversations = append(conversations, row)
	}
	return conversations, nil
}
