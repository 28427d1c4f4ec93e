package models

import "helpdesk/internal/shared/constants"

type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Email        string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string  `gorm:"size:255;not null"`
	Name         string  `gorm:"size:100;not null"`
	CompanyName  *string `gorm:"size:200"`
	Role         string  `gorm:"size:20;not null;index"`
	IsApproved   bool    `gorm:"not null;default:false"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
