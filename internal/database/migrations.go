package database

import (
	"log"
	"log/slog"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"akari-backend/internal/database/versions"
)

func GetMigrator(db *gorm.DB) *gormigrate.Gormigrate {
	migrator := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID:      "0",
			Migrate: versions.Migration0,
		},
	})

	migrator.InitSchema(func(txn *gorm.DB) error {
		// This is run by the migrator if no previous migration is detected.
		// It allows it to bypass running all the migrations sequentially and
		// just create the latest database state.

		log.Println("clean database detected, running full schema initialization")

		if txn.Dialector.Name() == "postgres" {
			if err := txn.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
				slog.Error("error enabling pgvector extension", "error", err)
				return err
			}
		}

		return txn.AutoMigrate(&Memory{})
	})

	return migrator
}
