package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/mockverse/config"
	"github.com/lshigami/mockverse/internal/model"
	"github.com/lshigami/mockverse/internal/repository"
	"github.com/rs/zerolog/log"
)

type SessionService interface {
	// Create allocates a new session id. A zero userID falls back to the
	// configured default user.
	Create(ctx context.Context, userID uint64) (string, error)
}

type sessionService struct {
	sessionRepo   repository.SessionRepository
	defaultUserID uint64
}

func NewSessionService(sessionRepo repository.SessionRepository, cfg *config.Config) SessionService {
	return &sessionService{
		sessionRepo:   sessionRepo,
		defaultUserID: cfg.Interview.DefaultUserID,
	}
}

func (s *sessionService) Create(ctx context.Context, userID uint64) (string, error) {
	if userID == 0 {
		if s.defaultUserID == 0 {
			return "", missing("user_id")
		}
		userID = s.defaultUserID
	}

	session := &model.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartedAt: time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		log.Error().Err(err).Uint64("user_id", userID).Msg("Failed to create interview session")
		return "", &PersistenceError{Op: "create_session", Err: err}
	}

	log.Info().Str("session_id", session.ID).Uint64("user_id", userID).Msg("Interview session started")
	return session.ID, nil
}
