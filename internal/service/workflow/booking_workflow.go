package workflow

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/qs-lzh/hotel-booking/internal/cache"
	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/mq"
	"github.com/qs-lzh/hotel-booking/internal/service/domain"
)

// BookingCache keeps the booking view of a user between requests. Fills are
// guarded by a per-user version that every committed write bumps.
type BookingCache interface {
	GetBookingView(ctx context.Context, userID uint, dest any) error
	BookingVersion(ctx context.Context, userID uint) (int64, error)
	SetBookingViewIfVersion(ctx context.Context, userID uint, version int64, view any) (bool, error)
	InvalidateBookingView(ctx context.Context, userID uint) error
}

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, message mq.BookingEventMessage) error
}

// BookingWorkflow runs the booking rules and then keeps the cache and the
// audit queue in step with what was committed.
type BookingWorkflow struct {
	bookingService domain.BookingService
	cache          BookingCache
	publisher      EventPublisher
	logger         *zap.Logger
}

func NewBookingWorkflow(bookingService domain.BookingService, cache BookingCache, publisher EventPublisher, logger *zap.Logger) *BookingWorkflow {
	return &BookingWorkflow{
		bookingService: bookingService,
		cache:          cache,
		publisher:      publisher,
		logger:         logger,
	}
}

func (w *BookingWorkflow) CurrentBooking(ctx context.Context, userID uint) (*domain.BookingView, error) {
	var cached domain.BookingView
	err := w.cache.GetBookingView(ctx, userID, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		w.logger.Warn("failed to read cached booking", zap.Uint("user_id", userID), zap.Error(err))
	}

	// the version must be read before the store
	version, versionErr := w.cache.BookingVersion(ctx, userID)
	if versionErr != nil {
		w.logger.Warn("failed to read booking version", zap.Uint("user_id", userID), zap.Error(versionErr))
	}

	view, err := w.bookingService.GetCurrentBooking(ctx, userID)
	if err != nil {
		return nil, err
	}
	if versionErr != nil {
		return view, nil
	}

	stored, err := w.cache.SetBookingViewIfVersion(ctx, userID, version, view)
	if err != nil {
		w.logger.Warn("failed to cache booking", zap.Uint("user_id", userID), zap.Error(err))
	} else if !stored {
		w.logger.Debug("booking changed while loading, not cached", zap.Uint("user_id", userID))
	}
	return view, nil
}

func (w *BookingWorkflow) Book(ctx context.Context, userID, roomID uint) (uint, error) {
	change, err := w.bookingService.CreateBooking(ctx, userID, roomID)
	if err != nil {
		return 0, err
	}

	w.afterCommit(ctx, model.BookingEventCreated, change)
	return change.BookingID, nil
}

func (w *BookingWorkflow) Reassign(ctx context.Context, userID, bookingID, roomID uint) (uint, error) {
	change, err := w.bookingService.ReassignBooking(ctx, userID, bookingID, roomID)
	if err != nil {
		return 0, err
	}

	w.afterCommit(ctx, model.BookingEventReassigned, change)
	return change.BookingID, nil
}

// afterCommit never fails the request: the booking row is already written.
func (w *BookingWorkflow) afterCommit(ctx context.Context, eventType model.BookingEventType, change *domain.BookingChange) {
	fields := []zap.Field{
		zap.String("event", string(eventType)),
		zap.Uint("booking_id", change.BookingID),
		zap.Uint("user_id", change.UserID),
		zap.Uint("room_id", change.RoomID),
	}

	if err := w.cache.InvalidateBookingView(ctx, change.UserID); err != nil {
		w.logger.Warn("failed to drop cached booking", append(fields, zap.Error(err))...)
	}

	if err := w.publisher.PublishBookingEvent(ctx, mq.BookingEventMessage{
		Type:           string(eventType),
		BookingID:      change.BookingID,
		UserID:         change.UserID,
		RoomID:         change.RoomID,
		PreviousRoomID: change.PreviousRoomID,
		OccurredAt:     time.Now().UTC(),
	}); err != nil {
		w.logger.Error("failed to publish booking event", append(fields, zap.Error(err))...)
		return
	}

	w.logger.Info("booking committed", fields...)
}
