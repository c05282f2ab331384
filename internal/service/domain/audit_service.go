package domain

import (
	"context"

	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/repository"
)

type AuditService interface {
	RecordBookingEvent(ctx context.Context, event *model.BookingEvent) error
	ListBookingEvents(ctx context.Context, userID uint) ([]model.BookingEvent, error)
}

type auditService struct {
	repo repository.BookingEventRepo
}

var _ AuditService = (*auditService)(nil)

func NewAuditService(repo repository.BookingEventRepo) *auditService {
	return &auditService{
		repo: repo,
	}
}

func (s *auditService) RecordBookingEvent(ctx context.Context, event *model.BookingEvent) error {
	return s.repo.Create(ctx, event)
}

func (s *auditService) ListBookingEvents(ctx context.Context, userID uint) ([]model.BookingEvent, error) {
	events, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.BookingEvent{}
	}
	return events, nil
}
