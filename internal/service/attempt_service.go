package service

import (
	"context"
	"strings"

	"github.com/lshigami/mockverse/internal/model"
	"github.com/lshigami/mockverse/internal/repository"
	"github.com/rs/zerolog/log"
)

// AttemptInput carries one submitted answer. IsCorrect is a pointer so an
// explicit false can be told apart from an omitted value.
type AttemptInput struct {
	SessionID  string
	UserID     uint64
	Question   string
	UserAnswer string
	IsCorrect  *bool
}

func (in AttemptInput) validate() error {
	switch {
	case strings.TrimSpace(in.SessionID) == "":
		return missing("session_id")
	case in.UserID == 0:
		return missing("user_id")
	case strings.TrimSpace(in.Question) == "":
		return missing("question")
	case strings.TrimSpace(in.UserAnswer) == "":
		return missing("user_answer")
	case in.IsCorrect == nil:
		return missing("is_correct")
	}
	return nil
}

type AttemptService interface {
	Record(ctx context.Context, input AttemptInput) error
}

type attemptService struct {
	attemptRepo repository.AttemptRepository
}

func NewAttemptService(attemptRepo repository.AttemptRepository) AttemptService {
	return &attemptService{attemptRepo: attemptRepo}
}

func (s *attemptService) Record(ctx context.Context, input AttemptInput) error {
	if err := input.validate(); err != nil {
		return err
	}

	attempt := &model.Attempt{
		SessionID:  strings.TrimSpace(input.SessionID),
		UserID:     input.UserID,
		Question:   input.Question,
		UserAnswer: input.UserAnswer,
		IsCorrect:  *input.IsCorrect,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		log.Error().Err(err).Str("session_id", attempt.SessionID).Msg("Failed to save attempt")
		return &PersistenceError{Op: "save_attempt", Err: err}
	}

	log.Info().Str("session_id", attempt.SessionID).Uint("attempt_id", attempt.ID).Bool("is_correct", attempt.IsCorrect).Msg("Attempt saved")
	return nil
}
