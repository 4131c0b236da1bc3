package repository

import (
	"context"

	"github.com/lshigami/mockverse/internal/model"
	"gorm.io/gorm"
)

//go:generate mockgen -source=./response_repository.go -destination=./mocks/response_repository.mock.go -package=repomocks ResponseRepository

type ResponseRepository interface {
	Create(ctx context.Context, response *model.Response) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(ctx context.Context, response *model.Response) error {
	return r.db.WithContext(ctx).Create(response).Error
}
