package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/qs-lzh/hotel-booking/internal/model"
)

type RoomRepo interface {
	WithTx(tx *gorm.DB) RoomRepo
	GetByID(ctx context.Context, id uint) (*model.Room, error)
	GetByIDForUpdate(ctx context.Context, id uint) (*model.Room, error)
}

type roomRepoGorm struct {
	db *gorm.DB
}

var _ RoomRepo = (*roomRepoGorm)(nil)

func NewRoomRepoGorm(db *gorm.DB) *roomRepoGorm {
	return &roomRepoGorm{
		db: db,
	}
}

func (r *roomRepoGorm) WithTx(tx *gorm.DB) RoomRepo {
	return &roomRepoGorm{
		db: tx,
	}
}

func (r *roomRepoGorm) GetByID(ctx context.Context, id uint) (*model.Room, error) {
	room, err := gorm.G[model.Room](r.db).Where("id = ?", id).First(ctx)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByIDForUpdate locks the room row until the surrounding transaction ends,
// so concurrent bookings of the same room count occupants one at a time.
// sqlite has no row locks and ignores the clause.
func (r *roomRepoGorm) GetByIDForUpdate(ctx context.Context, id uint) (*model.Room, error) {
	room, err := gorm.G[model.Room](r.db, clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
