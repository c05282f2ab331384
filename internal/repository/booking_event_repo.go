package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs-lzh/hotel-booking/internal/model"
)

type BookingEventRepo interface {
	Create(ctx context.Context, event *model.BookingEvent) error
	ListByUserID(ctx context.Context, userID uint) ([]model.BookingEvent, error)
}

type bookingEventRepoGorm struct {
	db *gorm.DB
}

var _ BookingEventRepo = (*bookingEventRepoGorm)(nil)

func NewBookingEventRepoGorm(db *gorm.DB) *bookingEventRepoGorm {
	return &bookingEventRepoGorm{
		db: db,
	}
}

// Create ignores an event that was already stored, so redelivered messages
// leave a single row.
func (r *bookingEventRepoGorm) Create(ctx context.Context, event *model.BookingEvent) error {
	return gorm.G[model.BookingEvent](r.db, clause.OnConflict{DoNothing: true}).Create(ctx, event)
}

func (r *bookingEventRepoGorm) ListByUserID(ctx context.Context, userID uint) ([]model.BookingEvent, error) {
	events, err := gorm.G[model.BookingEvent](r.db).
		Where("user_id = ?", userID).
		Order("occurred_at, id").
		Find(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}
