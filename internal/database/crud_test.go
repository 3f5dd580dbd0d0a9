package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"akari-backend/internal/embeddings"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, GetMigrator(db).Migrate())
	return db
}

func insertTurn(t *testing.T, db *gorm.DB, user, conversation, query string, at time.Time) {
	t.Helper()
	err := InsertMemory(context.Background(), db, &Memory{
		Id:             uuid.New(),
		UserId:         user,
		ConversationId: conversation,
		Query:          query,
		Response:       "response to " + query,
		Embedding:      embeddings.Placeholder{}.Embed(context.Background(), query),
		CreatedAt:      at,
	})
	require.NoError(t, err)
}

func TestListMemoriesOrderedAscending(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	insertTurn(t, db, "user123", "conv-1", "second", base.Add(time.Minute))
	insertTurn(t, db, "user123", "conv-1", "first", base)
	insertTurn(t, db, "user123", "conv-2", "other conversation", base)

	memories, err := ListMemories(context.Background(), db, "user123", "conv-1")
	require.NoError(t, err)
	require.Len(t, memories, 2)
	assert.Equal(t, "first", memories[0].Query)
	assert.Equal(t, "second", memories[1].Query)
}

func TestListMemoriesEmpty(t *testing.T) {
	db := newTestDB(t)

	memories, err := ListMemories(context.Background(), db, "user123", "missing")
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestListConversationsDeduplicates(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	insertTurn(t, db, "user123", "conv-1", "q1", base)
	insertTurn(t, db, "user123", "conv-1", "q2", base.Add(2*time.Minute))
	insertTurn(t, db, "user123", "conv-2", "q3", base.Add(time.Minute))
	insertTurn(t, db, "someone-else", "conv-3", "q4", base)

	conversations, err := ListConversations(context.Background(), db, "user123")
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	// Most recent first, one entry per conversation, latest turn wins.
	assert.Equal(t, "conv-1", conversations[0].ConversationId)
	assert.WithinDuration(t, base.Add(2*time.Minute), conversations[0].CreatedAt, time.Second)
	assert.Equal(t, "conv-2", conversations[1].ConversationId)
}

func TestEmbeddingRoundTrip(t *testing.T) {
	db := newTestDB(t)
	insertTurn(t, db, "user123", "conv-1", "q", time.Now().UTC())

	memories, err := ListMemories(context.Background(), db, "user123", "conv-1")
	require.NoError(t, err)
	require.Len(t, memories, 1)

	values := memories[0].Embedding.Slice()
	require.Len(t, values, embeddings.Dimensions)
	assert.InDelta(t, 0.01, values[0], 1e-6)
}
