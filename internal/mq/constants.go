package mq

import "time"

// Queue names and message definitions

// immediate queue from the booking workflow to the audit consumer
// deliver message to record a committed booking change
const (
	BookingEventsQueue = "booking.events.immediate"
)

type BookingEventMessage struct {
	Type           string    `json:"type"`
	BookingID      uint      `json:"booking_id"`
	UserID         uint      `json:"user_id"`
	RoomID         uint      `json:"room_id"`
	PreviousRoomID uint      `json:"previous_room_id,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
