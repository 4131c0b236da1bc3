package service

import (
	"context"

	"github.com/lshigami/mockverse/internal/model"
	"github.com/lshigami/mockverse/internal/repository"
	"github.com/rs/zerolog/log"
)

type ScoreService interface {
	// Score is recomputed from the stored attempts on every call.
	Score(ctx context.Context, sessionID string) (model.Score, error)
}

type scoreService struct {
	attemptRepo repository.AttemptRepository
}

func NewScoreService(attemptRepo repository.AttemptRepository) ScoreService {
	return &scoreService{attemptRepo: attemptRepo}
}

func (s *scoreService) Score(ctx context.Context, sessionID string) (model.Score, error) {
	score, err := s.attemptRepo.AggregateBySession(ctx, sessionID)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to aggregate score")
		return model.Score{}, &PersistenceError{Op: "fetch_score", Err: err}
	}
	return score, nil
}
