package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/model"
)

type EnrollmentRepo interface {
	WithTx(tx *gorm.DB) EnrollmentRepo
	GetByUserID(ctx context.Context, userID uint) (*model.Enrollment, error)
}

type enrollmentRepoGorm struct {
	db *gorm.DB
}

var _ EnrollmentRepo = (*enrollmentRepoGorm)(nil)

func NewEnrollmentRepoGorm(db *gorm.DB) *enrollmentRepoGorm {
	return &enrollmentRepoGorm{
		db: db,
	}
}

func (r *enrollmentRepoGorm) WithTx(tx *gorm.DB) EnrollmentRepo {
	return &enrollmentRepoGorm{
		db: tx,
	}
}

func (r *enrollmentRepoGorm) GetByUserID(ctx context.Context, userID uint) (*model.Enrollment, error) {
	enrollment, err := gorm.G[model.Enrollment](r.db).Where("user_id = ?", userID).First(ctx)
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
