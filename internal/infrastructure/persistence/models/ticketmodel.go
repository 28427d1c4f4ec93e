package models

import "helpdesk/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	Urgency     string `gorm:"size:10;not null;index"`
	Product     string `gorm:"size:100"`
	Platform    string `gorm:"size:50"`
	SWVersion   string `gorm:"size:50;column:sw_version"`
	OS          string `gorm:"size:100;column:os"`
	TicketType  string `gorm:"size:10;not null"`
	CustomerID  uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type ReplyModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Message   string `gorm:"type:text"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ReplyModel) TableName() string {
	return constants.TableTicketReplies
}

type TicketFileModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	URL          string `gorm:"size:500;not null"`
	OriginalName string `gorm:"size:255;not null"`
	PublicID     string `gorm:"size:255"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TicketFileModel) TableName() string {
	return constants.TableTicketFiles
}

type ReplyFileModel struct {
	ID           uint   `gorm:"primaryKey"`
	ReplyID      uint   `gorm:"not null;index"`
	URL          string `gorm:"size:500;not null"`
	OriginalName string `gorm:"size:255;not null"`
	PublicID     string `gorm:"size:255"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (ReplyFileModel) TableName() string {
	return constants.TableTicketReplyFiles
}

// TicketReadModel stores one watermark row per (ticket, user) pair.
type TicketReadModel struct {
	ID         uint  `gorm:"primaryKey"`
	TicketID   uint  `gorm:"not null;uniqueIndex:idx_ticket_reads_ticket_user"`
	UserID     uint  `gorm:"not null;uniqueIndex:idx_ticket_reads_ticket_user"`
	LastReadAt int64 `gorm:"not null"`
}

func (TicketReadModel) TableName() string {
	return constants.TableTicketReads
}
