package repository

import (
	"context"

	"github.com/lshigami/mockverse/internal/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./session_repository.go -destination=./mocks/session_repository.mock.go -package=repomocks SessionRepository

type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	// FindByID returns gorm.ErrRecordNotFound when the session does not exist.
	FindByID(ctx context.Context, id string) (*model.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	if err := r.db.WithContext(ctx).Where("session_id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
