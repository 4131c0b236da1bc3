package model

import (
	"time"
)

// Attempt is one submitted answer within an interview session. Rows are
// append-only; nothing updates or deletes them.
type Attempt struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	SessionID  string    `json:"session_id" gorm:"type:varchar(36);not null;index"`
	UserID     uint64    `json:"user_id" gorm:"not null;index"`
	Question   string    `json:"question" gorm:"type:text;not null"`
	UserAnswer string    `json:"user_answer" gorm:"type:text;not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Attempt) TableName() string { return "interview_attempts" }

// Score is derived from the attempts of a session and never stored.
type Score struct {
	Correct int64 `json:"correct"`
	Total   int64 `json:"total"`
}
