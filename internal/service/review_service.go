package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/mockverse/internal/dto"
	"github.com/lshigami/mockverse/internal/model"
	"github.com/lshigami/mockverse/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ReviewService interface {
	GetSession(ctx context.Context, sessionID string) (*dto.SessionReviewResponse, error)
}

type reviewService struct {
	sessionRepo repository.SessionRepository
	attemptRepo repository.AttemptRepository
}

func NewReviewService(sessionRepo repository.SessionRepository, attemptRepo repository.AttemptRepository) ReviewService {
	return &reviewService{
		sessionRepo: sessionRepo,
		attemptRepo: attemptRepo,
	}
}

// scoreOf counts the attempts it is given, so a review's score always agrees
// with its attempt list.
func scoreOf(attempts []model.Attempt) model.Score {
	score := model.Score{Total: int64(len(attempts))}
	for _, a := range attempts {
		if a.IsCorrect {
			score.Correct++
		}
	}
	return score
}

func (s *reviewService) GetSession(ctx context.Context, sessionID string) (*dto.SessionReviewResponse, error) {
	var (
		session  *model.Session
		attempts []model.Attempt
	)

	// The two reads are independent.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		session, err = s.sessionRepo.FindByID(egCtx, sessionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("session %q: %w", sessionID, ErrSessionNotFound)
		}
		if err != nil {
			return &PersistenceError{Op: "find_session", Err: err}
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		attempts, err = s.attemptRepo.FindBySession(egCtx, sessionID)
		if err != nil {
			return &PersistenceError{Op: "find_attempts", Err: err}
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Error().Err(err).Str("session_id", sessionID).Msg("Failed to load session review")
		}
		return nil, err
	}

	score := scoreOf(attempts)
	resp := dto.SessionReviewResponse{
		SessionID: session.ID,
		UserID:    session.UserID,
		StartedAt: session.StartedAt,
		Attempts:  make([]dto.AttemptResponse, 0, len(attempts)),
		Score:     dto.ScoreResponse{Correct: score.Correct, Total: score.Total},
	}
	if len(attempts) > 0 {
		if err := copier.Copy(&resp.Attempts, &attempts); err != nil {
			log.Error().Err(err).Msg("Failed to copy attempts to AttemptResponse")
			return nil, fmt.Errorf("error preparing session review: %w", err)
		}
	}
	return &resp, nil
}
