package service

import (
	"context"

	"github.com/lshigami/mockverse/internal/model"
	"github.com/lshigami/mockverse/internal/repository"
	"github.com/rs/zerolog/log"
)

// ResponseInput is stored as given; none of its fields are required.
type ResponseInput struct {
	UserID    uint64
	SessionID string
	Question  string
	Answer    string
	Feedback  string
}

type ResponseService interface {
	Save(ctx context.Context, input ResponseInput) error
}

type responseService struct {
	responseRepo repository.ResponseRepository
}

func NewResponseService(responseRepo repository.ResponseRepository) ResponseService {
	return &responseService{responseRepo: responseRepo}
}

func (s *responseService) Save(ctx context.Context, input ResponseInput) error {
	response := &model.Response{
		UserID:    input.UserID,
		SessionID: input.SessionID,
		Question:  input.Question,
		Answer:    input.Answer,
		Feedback:  input.Feedback,
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		log.Error().Err(err).Str("session_id", input.SessionID).Msg("Failed to save interview response")
		return &PersistenceError{Op: "save_response", Err: err}
	}
	return nil
}
