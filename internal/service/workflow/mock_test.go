package workflow

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/mq"
	"github.com/qs-lzh/hotel-booking/internal/service/domain"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) GetCurrentBooking(ctx context.Context, userID uint) (*domain.BookingView, error) {
	args := m.Called(ctx, userID)
	view, _ := args.Get(0).(*domain.BookingView)
	return view, args.Error(1)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*domain.BookingChange, error) {
	args := m.Called(ctx, userID, roomID)
	change, _ := args.Get(0).(*domain.BookingChange)
	return change, args.Error(1)
}

func (m *mockBookingService) ReassignBooking(ctx context.Context, userID, bookingID, roomID uint) (*domain.BookingChange, error) {
	args := m.Called(ctx, userID, bookingID, roomID)
	change, _ := args.Get(0).(*domain.BookingChange)
	return change, args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) GetBookingView(ctx context.Context, userID uint, dest any) error {
	args := m.Called(ctx, userID, dest)
	if view, ok := args.Get(0).(*domain.BookingView); ok && view != nil {
		*dest.(*domain.BookingView) = *view
		return nil
	}
	return args.Error(1)
}

func (m *mockCache) BookingVersion(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCache) SetBookingViewIfVersion(ctx context.Context, userID uint, version int64, view any) (bool, error) {
	args := m.Called(ctx, userID, version, view)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) InvalidateBookingView(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishBookingEvent(ctx context.Context, message mq.BookingEventMessage) error {
	return m.Called(ctx, message).Error(0)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) RecordBookingEvent(ctx context.Context, event *model.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockAuditService) ListBookingEvents(ctx context.Context, userID uint) ([]model.BookingEvent, error) {
	args := m.Called(ctx, userID)
	events, _ := args.Get(0).([]model.BookingEvent)
	return events, args.Error(1)
}
