package repository

import (
	"context"

	"github.com/lshigami/mockverse/internal/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./attempt_repository.go -destination=./mocks/attempt_repository.mock.go -package=repomocks AttemptRepository

type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	// AggregateBySession counts a session's attempts and how many were correct
	// in a single statement. Unknown sessions yield a zero score.
	AggregateBySession(ctx context.Context, sessionID string) (model.Score, error)
	FindBySession(ctx context.Context, sessionID string) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepository) AggregateBySession(ctx context.Context, sessionID string) (model.Score, error) {
	var score model.Score
	err := r.db.WithContext(ctx).Model(&model.Attempt{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_correct THEN 1 ELSE 0 END), 0) AS correct").
		Where("session_id = ?", sessionID).
		Scan(&score).Error
	return score, err
}

func (r *attemptRepository) FindBySession(ctx context.Context, sessionID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").Order("id ASC").
		Find(&attempts).Error
	return attempts, err
}
