package model

import (
	"time"
)

type Session struct {
	ID        string    `gorm:"column:session_id;primaryKey;type:varchar(36)" json:"session_id"`
	UserID    uint64    `json:"user_id" gorm:"not null;index"`
	StartedAt time.Time `json:"started_at" gorm:"not null"`
}

func (Session) TableName() string { return "interview_sessions" }
