package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// Memory is one conversation turn: a query, the response it produced, and
// the query embedding. Rows are immutable once written; ordering within a
// conversation is by CreatedAt ascending.
type Memory struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId         string    `gorm:"index:idx_memories_user_conversation;not null"`
	ConversationId string    `gorm:"index:idx_memories_user_conversation;not null"`
	Query          string
	Response       string
	Embedding      pgvector.Vector `gorm:"type:vector(768)"`
	Metadata       datatypes.JSON
	CreatedAt      time.Time `gorm:"index"`
}
