package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/emrekoc/jobboard/backend/internal/models"
)

// MessageStore handles message rows in the sqlite database. Messages are
// insert-only; nothing ever mutates or removes them.
type MessageStore struct {
	db *gorm.DB
}

func NewMessageStore(db *gorm.DB) *MessageStore {
	return &MessageStore{db: db}
}

func (s *MessageStore) Create(ctx context.Context, m *models.Message) error {
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// ListByJob returns a listing's messages, most recent first.
func (s *MessageStore) ListByJob(ctx context.Context, jobID uint) ([]models.Message, error) {
	msgs := []models.Message{}
	err := s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("id DESC").
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// ListByUser returns the messages a user received or sent, most recent
// first, joined with the listing so clients can show its title. The join
// is a LEFT JOIN: a deleted listing leaves job_title null.
func (s *MessageStore) ListByUser(ctx context.Context, identifier string) ([]models.InboxMessage, error) {
	msgs := []models.InboxMessage{}
	err := s.db.WithContext(ctx).Raw(`
		SELECT m.*, j.title AS job_title
		FROM messages m
		LEFT JOIN jobs j ON j.id = m.job_id
		WHERE m.receiver = ? OR m.sender = ?
		ORDER BY m.id DESC`,
		identifier, identifier,
	).Scan(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}
