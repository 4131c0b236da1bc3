package dto

import "time"

type QuestionsResponse struct {
	Questions []string `json:"questions"`
}

type CheckAnswerResponse struct {
	Feedback  string `json:"feedback"`
	IsCorrect Flag   `json:"is_correct" swaggertype:"integer" enums:"0,1"`
}

type StartSessionResponse struct {
	SessionID string `json:"sessionId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ScoreResponse struct {
	Correct int64 `json:"correct"`
	Total   int64 `json:"total"`
}

type AttemptResponse struct {
	ID         uint      `json:"id"`
	Question   string    `json:"question"`
	UserAnswer string    `json:"user_answer"`
	IsCorrect  Flag      `json:"is_correct" swaggertype:"integer" enums:"0,1"`
	CreatedAt  time.Time `json:"created_at"`
}

type SessionReviewResponse struct {
	SessionID string            `json:"session_id"`
	UserID    uint64            `json:"user_id"`
	StartedAt time.Time         `json:"started_at"`
	Attempts  []AttemptResponse `json:"attempts"`
	Score     ScoreResponse     `json:"score"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
