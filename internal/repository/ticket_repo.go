package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/model"
)

type TicketRepo interface {
	WithTx(tx *gorm.DB) TicketRepo
	GetByEnrollmentID(ctx context.Context, enrollmentID uint) (*model.Ticket, error)
}

type ticketRepoGorm struct {
	db *gorm.DB
}

var _ TicketRepo = (*ticketRepoGorm)(nil)

func NewTicketRepoGorm(db *gorm.DB) *ticketRepoGorm {
	return &ticketRepoGorm{
		db: db,
	}
}

func (r *ticketRepoGorm) WithTx(tx *gorm.DB) TicketRepo {
	return &ticketRepoGorm{
		db: tx,
	}
}

// GetByEnrollmentID returns the enrollment's ticket with its ticket type attached.
func (r *ticketRepoGorm) GetByEnrollmentID(ctx context.Context, enrollmentID uint) (*model.Ticket, error) {
	ticket, err := gorm.G[model.Ticket](r.db).
		Preload("TicketType", nil).
		Where("enrollment_id = ?", enrollmentID).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
