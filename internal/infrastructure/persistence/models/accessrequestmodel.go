package models

import "helpdesk/internal/shared/constants"

type AccessRequestModel struct {
	ID                  uint    `gorm:"primaryKey"`
	Email               string  `gorm:"size:255;not null;index"`
	Name                string  `gorm:"size:100;not null"`
	CompanyName         *string `gorm:"size:200"`
	Status              string  `gorm:"size:20;not null;index"`
	MagicToken          *string `gorm:"size:64;index"`
	MagicTokenExpiresAt *int64
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (AccessRequestModel) TableName() string {
	return constants.TableAccessRequests
}
