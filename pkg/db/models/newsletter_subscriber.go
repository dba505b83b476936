package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type NewsletterSubscriber struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email       string         `gorm:"column:email;uniqueIndex:newsletter_subscribers_email_key" json:"email"`
	Name        string         `gorm:"column:name" json:"name"`
	Preferences pq.StringArray `gorm:"column:preferences;type:text[]" json:"preferences"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (NewsletterSubscriber) TableName() string { return "newsletter_subscribers" }

func (n *NewsletterSubscriber) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
