package dto

type StartInterviewRequest struct {
	Topic      string `json:"topic" binding:"required" example:"Arrays"`
	Difficulty string `json:"difficulty" binding:"required" example:"easy"`
}

type CheckAnswerRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// StartSessionRequest may be sent with an empty body. User ids are accepted
// as numbers or numeric strings.
type StartSessionRequest struct {
	UserID *UserID `json:"user_id" swaggertype:"integer"`
}

type SaveAttemptRequest struct {
	SessionID  string `json:"session_id" binding:"required"`
	UserID     UserID `json:"user_id" binding:"required" swaggertype:"integer"`
	Question   string `json:"question" binding:"required"`
	UserAnswer string `json:"user_answer" binding:"required"`
	IsCorrect  *Flag  `json:"is_correct" binding:"required" swaggertype:"integer" enums:"0,1"`
}

// SaveResponseRequest uses the camelCase keys of the legacy client.
type SaveResponseRequest struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Feedback  string `json:"feedback"`
	SessionID string `json:"sessionId"`
	UserID    UserID `json:"userId" swaggertype:"integer"`
}
