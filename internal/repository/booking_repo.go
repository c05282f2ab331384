package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/model"
)

type BookingRepo interface {
	WithTx(tx *gorm.DB) BookingRepo
	Create(ctx context.Context, booking *model.Booking) error
	GetByUserID(ctx context.Context, userID uint) (*model.Booking, error)
	GetByIDAndUserID(ctx context.Context, id, userID uint) (*model.Booking, error)
	GetByRoomID(ctx context.Context, roomID uint) (*model.Booking, error)
	CountByRoomID(ctx context.Context, roomID uint) (int64, error)
	UpdateRoom(ctx context.Context, id, roomID uint) error
}

type bookingRepoGorm struct {
	db *gorm.DB
}

var _ BookingRepo = (*bookingRepoGorm)(nil)

func NewBookingRepoGorm(db *gorm.DB) *bookingRepoGorm {
	return &bookingRepoGorm{
		db: db,
	}
}

func (r *bookingRepoGorm) WithTx(tx *gorm.DB) BookingRepo {
	return &bookingRepoGorm{
		db: tx,
	}
}

func (r *bookingRepoGorm) Create(ctx context.Context, booking *model.Booking) error {
	if err := gorm.G[model.Booking](r.db).Create(ctx, booking); err != nil {
		return err
	}
	return nil
}

// GetByUserID returns the user's first booking by id, with its room attached.
func (r *bookingRepoGorm) GetByUserID(ctx context.Context, userID uint) (*model.Booking, error) {
	booking, err := gorm.G[model.Booking](r.db).
		Preload("Room", nil).
		Where("user_id = ?", userID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) GetByIDAndUserID(ctx context.Context, id, userID uint) (*model.Booking, error) {
	booking, err := gorm.G[model.Booking](r.db).
		Where("id = ? AND user_id = ?", id, userID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) GetByRoomID(ctx context.Context, roomID uint) (*model.Booking, error) {
	booking, err := gorm.G[model.Booking](r.db).Where("room_id = ?", roomID).First(ctx)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepoGorm) CountByRoomID(ctx context.Context, roomID uint) (int64, error) {
	return gorm.G[model.Booking](r.db).Where("room_id = ?", roomID).Count(ctx, "*")
}

// UpdateRoom moves a booking to another room. It returns gorm.ErrRecordNotFound
// when no booking has the given id.
func (r *bookingRepoGorm) UpdateRoom(ctx context.Context, id, roomID uint) error {
	rows, err := gorm.G[model.Booking](r.db).
		Where("id = ?", id).
		Updates(ctx, model.Booking{RoomID: roomID, UpdatedAt: time.Now()})
	if err != nil {
		return err
	}
	if rows == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
