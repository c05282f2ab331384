package domain

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/repository"
	"github.com/qs-lzh/hotel-booking/internal/service"
)

// BookingView is what a user sees of their current booking.
type BookingView struct {
	ID   uint       `json:"id"`
	Room model.Room `json:"Room"`
}

// BookingChange describes a committed create or reassign.
type BookingChange struct {
	BookingID      uint
	UserID         uint
	RoomID         uint
	PreviousRoomID uint
}

// BookingService decides whether a user may occupy a room and persists the
// outcome. When several rules are broken at once the first failing check wins,
// in this order: ticket existence, eligibility, room existence, capacity,
// existing booking.
type BookingService interface {
	GetCurrentBooking(ctx context.Context, userID uint) (*BookingView, error)
	CreateBooking(ctx context.Context, userID, roomID uint) (*BookingChange, error)
	ReassignBooking(ctx context.Context, userID, bookingID, roomID uint) (*BookingChange, error)
}

type bookingService struct {
	db *gorm.DB

	bookingRepo    repository.BookingRepo
	roomRepo       repository.RoomRepo
	enrollmentRepo repository.EnrollmentRepo
	ticketRepo     repository.TicketRepo
}

var _ BookingService = (*bookingService)(nil)

func NewBookingService(
	db *gorm.DB,
	bookingRepo repository.BookingRepo,
	roomRepo repository.RoomRepo,
	enrollmentRepo repository.EnrollmentRepo,
	ticketRepo repository.TicketRepo,
) *bookingService {
	return &bookingService{
		db:             db,
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
	}
}

// ParseBookingID accepts only positive base-10 integers.
func ParseBookingID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrNotFound
	}
	return uint(id), nil
}

func (s *bookingService) GetCurrentBooking(ctx context.Context, userID uint) (*BookingView, error) {
	booking, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &BookingView{
		ID:   booking.ID,
		Room: booking.Room,
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*BookingChange, error) {
	if roomID == 0 {
		return nil, service.ErrNotFound
	}

	ticket, err := s.ticketOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := CheckEligibility(ticket); err != nil {
		return nil, err
	}

	change := &BookingChange{UserID: userID, RoomID: roomID}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reserveBed(ctx, tx, roomID); err != nil {
			return err
		}

		booking := &model.Booking{
			UserID: userID,
			RoomID: roomID,
		}
		if err := s.bookingRepo.WithTx(tx).Create(ctx, booking); err != nil {
			return err
		}
		change.BookingID = booking.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

func (s *bookingService) ReassignBooking(ctx context.Context, userID, bookingID, roomID uint) (*BookingChange, error) {
	if bookingID == 0 || roomID == 0 {
		return nil, service.ErrNotFound
	}

	change := &BookingChange{BookingID: bookingID, UserID: userID, RoomID: roomID}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reserveBed(ctx, tx, roomID); err != nil {
			return err
		}

		bookingRepo := s.bookingRepo.WithTx(tx)
		booking, err := bookingRepo.GetByIDAndUserID(ctx, bookingID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNoExistingBooking
			}
			return err
		}
		change.PreviousRoomID = booking.RoomID

		if err := bookingRepo.UpdateRoom(ctx, bookingID, roomID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return service.ErrNotFound
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return change, nil
}

// ticketOf returns the user's ticket, or nil when the user has no enrollment
// or the enrollment has no ticket.
func (s *bookingService) ticketOf(ctx context.Context, userID uint) (*model.Ticket, error) {
	enrollment, err := s.enrollmentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	ticket, err := s.ticketRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ticket, nil
}

// reserveBed locks the room row and checks it still has a free bed. It must
// run inside tx so the count and the following write see the same occupancy.
func (s *bookingService) reserveBed(ctx context.Context, tx *gorm.DB, roomID uint) error {
	room, err := s.roomRepo.WithTx(tx).GetByIDForUpdate(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}

	occupancy, err := s.bookingRepo.WithTx(tx).CountByRoomID(ctx, room.ID)
	if err != nil {
		return err
	}
	return CheckCapacity(room, occupancy)
}
