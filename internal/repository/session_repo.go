package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/model"
)

type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByToken(ctx context.Context, token string) (*model.Session, error)
}

type sessionRepoGorm struct {
	db *gorm.DB
}

var _ SessionRepo = (*sessionRepoGorm)(nil)

func NewSessionRepoGorm(db *gorm.DB) *sessionRepoGorm {
	return &sessionRepoGorm{
		db: db,
	}
}

func (r *sessionRepoGorm) Create(ctx context.Context, session *model.Session) error {
	return gorm.G[model.Session](r.db).Create(ctx, session)
}

func (r *sessionRepoGorm) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	session, err := gorm.G[model.Session](r.db).Where("token = ?", token).First(ctx)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
