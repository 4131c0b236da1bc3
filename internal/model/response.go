package model

import (
	"time"
)

// Response is the legacy per-answer record that keeps the raw judge feedback.
// Scoring never reads it.
type Response struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint64    `json:"user_id" gorm:"index"`
	SessionID string    `json:"session_id" gorm:"type:varchar(36);index"`
	Question  string    `json:"question" gorm:"type:text"`
	Answer    string    `json:"answer" gorm:"type:text"`
	Feedback  string    `json:"feedback" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Response) TableName() string { return "interview_responses" }
