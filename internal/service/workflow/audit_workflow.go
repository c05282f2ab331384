package workflow

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/mq"
	"github.com/qs-lzh/hotel-booking/internal/service/domain"
)

// AuditWorkflow stores every booking event published by BookingWorkflow.
type AuditWorkflow struct {
	auditService domain.AuditService
	logger       *zap.Logger
}

func NewAuditWorkflow(auditService domain.AuditService, logger *zap.Logger) *AuditWorkflow {
	return &AuditWorkflow{
		auditService: auditService,
		logger:       logger,
	}
}

func (w *AuditWorkflow) Start(mqConn *amqp.Connection) error {
	if err := w.ConsumeBookingEvents(mqConn); err != nil {
		return err
	}
	return nil
}

func (w *AuditWorkflow) ConsumeBookingEvents(conn *amqp.Connection) error {
	ch, err := mq.NewChannel(conn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.BookingEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.handleBookingEvent(context.Background(), msg); err != nil {
				w.logger.Error("failed to handle booking event", zap.Error(err))
			}
		}
	}()

	return nil
}

func (w *AuditWorkflow) handleBookingEvent(ctx context.Context, msg amqp.Delivery) error {
	var message mq.BookingEventMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		msg.Nack(false, false)
		return err
	}

	event := &model.BookingEvent{
		BookingID:      message.BookingID,
		UserID:         message.UserID,
		Type:           model.BookingEventType(message.Type),
		RoomID:         message.RoomID,
		PreviousRoomID: message.PreviousRoomID,
		OccurredAt:     message.OccurredAt,
	}
	if err := w.auditService.RecordBookingEvent(ctx, event); err != nil {
		msg.Nack(false, true)
		return err
	}

	msg.Ack(false)

	return nil
}
