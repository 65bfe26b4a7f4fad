package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestbookEntry is a single published guestbook message. Entries are
// immutable after creation; the only mutation is an admin delete.
type GuestbookEntry struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Message string `gorm:"type:text;not null" json:"message"`

	// IP holds the origin address the submission was attributed to.
	// Sized for IPv6; may be the literal "unknown".
	IP string `gorm:"size:45" json:"ip,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (GuestbookEntry) TableName() string {
	return "guestbook_entries"
}

func (e *GuestbookEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
