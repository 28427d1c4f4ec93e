// Package migration keeps the database schema in sync with the persistence
// models via GORM auto-migration.
package migration

import (
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/logger"
)

// AutoMigrate creates or updates every table the application uses. Order
// matters only for readability; there are no database-level foreign keys.
func AutoMigrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.UserModel{},
		&models.AccessRequestModel{},
		&models.TicketModel{},
		&models.ReplyModel{},
		&models.TicketFileModel{},
		&models.ReplyFileModel{},
		&models.TicketReadModel{},
		&models.NoticeModel{},
	}

	for _, table := range tables {
		if err := db.AutoMigrate(table); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", table, err)
		}
	}

	logger.Info("database migration completed", "tables", len(tables))
	return nil
}

// TableNames lists every table AutoMigrate manages, for status reporting.
func TableNames() []string {
	return []string{
		models.UserModel{}.TableName(),
		models.AccessRequestModel{}.TableName(),
		models.TicketModel{}.TableName(),
		models.ReplyModel{}.TableName(),
		models.TicketFileModel{}.TableName(),
		models.ReplyFileModel{}.TableName(),
		models.TicketReadModel{}.TableName(),
		models.NoticeModel{}.TableName(),
	}
}
