package models

import "time"

// Message is one note sent against a listing. Receiver is the listing
// owner's identifying string resolved once at send time; later ownership
// changes do not rewrite it.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	JobID     uint      `json:"job_id" gorm:"index"`
	Sender    string    `json:"sender" gorm:"size:255"`
	SenderAge int       `json:"sender_age"`
	Text      string    `json:"message_text" gorm:"column:message_text"`
	Receiver  string    `json:"receiver" gorm:"size:255;index"`
	CreatedAt time.Time `json:"created_at"`
}

// InboxMessage is a message joined with its listing for display context.
// JobTitle is nil when the listing has since been deleted.
type InboxMessage struct {
	ID        uint      `json:"id"`
	JobID     uint      `json:"job_id"`
	Sender    string    `json:"sender"`
	SenderAge int       `json:"sender_age"`
	Text      string    `json:"message_text" gorm:"column:message_text"`
	Receiver  string    `json:"receiver"`
	CreatedAt time.Time `json:"created_at"`
	JobTitle  *string   `json:"job_title"`
}

// SendRequest is the JSON body for POST /api/messages.
type SendRequest struct {
	JobID     uint   `json:"job_id"`
	Sender    string `json:"sender"`
	SenderAge int    `json:"sender_age"`
	Text      string `json:"message_text"`
}
