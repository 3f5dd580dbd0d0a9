package versions

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

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

func Migration0(txn *gorm.DB) error {
	if txn.Dialector.Name() == "postgres" {
		if err := txn.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
			return err
		}
	}
	return txn.AutoMigrate(&Memory{})
}
