package notice

import (
	"fmt"
	"time"
)

// Notice is an admin-authored announcement. Content is markdown; rendering
// and sanitization happen at read time in the application layer.
type Notice struct {
	id        uint
	title     string
	content   string
	authorID  uint
	createdAt time.Time
	updatedAt time.Time
}

func NewNotice(title, content string, authorID uint) (*Notice, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := time.Now()
	return &Notice{
		title:     title,
		content:   content,
		authorID:  authorID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructNotice(id uint, title, content string, authorID uint, createdAt, updatedAt time.Time) (*Notice, error) {
	if id == 0 {
		return nil, fmt.Errorf("notice ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}

	return &Notice{
		id:        id,
		title:     title,
		content:   content,
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (n *Notice) ID() uint             { return n.id }
func (n *Notice) Title() string        { return n.title }
func (n *Notice) Content() string      { return n.content }
func (n *Notice) AuthorID() uint       { return n.authorID }
func (n *Notice) CreatedAt() time.Time { return n.createdAt }
func (n *Notice) UpdatedAt() time.Time { return n.updatedAt }

func (n *Notice) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notice ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notice ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *Notice) Update(title, content string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}
	n.title = title
	n.content = content
	n.updatedAt = time.Now()
	return nil
}
