package model

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Session struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Token     string    `gorm:"size:512;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"userId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Cpf       string    `gorm:"size:14;not null" json:"cpf"`
	Birthday  time.Time `json:"birthday"`
	Phone     string    `gorm:"size:32" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Price         int       `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"isRemote"`
	IncludesHotel bool      `gorm:"not null" json:"includesHotel"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	TicketTypeID uint         `gorm:"not null;index" json:"ticketTypeId"`
	EnrollmentID uint         `gorm:"not null;uniqueIndex" json:"enrollmentId"`
	Status       TicketStatus `gorm:"type:varchar(16);not null" json:"status"`
	TicketType   TicketType   `json:"TicketType"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type Hotel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Image     string    `gorm:"size:512" json:"image"`
	Rooms     []Room    `json:"Rooms,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Capacity  int       `gorm:"not null" json:"capacity"`
	HotelID   uint      `gorm:"not null;index" json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Booking links a user to a room. ID and UserID never change after creation.
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	RoomID    uint      `gorm:"not null;index" json:"roomId"`
	Room      Room      `json:"Room"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingEventType string

const (
	BookingEventCreated    BookingEventType = "booking.created"
	BookingEventReassigned BookingEventType = "booking.reassigned"
)

// BookingEvent is the audit trail row written by the booking events consumer.
type BookingEvent struct {
	ID             uint             `gorm:"primaryKey" json:"id"`
	BookingID      uint             `gorm:"not null;uniqueIndex:idx_booking_event_once" json:"bookingId"`
	UserID         uint             `gorm:"not null;index" json:"userId"`
	Type           BookingEventType `gorm:"type:varchar(32);not null;uniqueIndex:idx_booking_event_once" json:"type"`
	RoomID         uint             `gorm:"not null" json:"roomId"`
	PreviousRoomID uint             `json:"previousRoomId,omitempty"`
	OccurredAt     time.Time        `gorm:"not null;uniqueIndex:idx_booking_event_once" json:"occurredAt"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// All lists every model handled by AutoMigrate, parents first.
func All() []any {
	return []any{
		&User{}, &Session{}, &Enrollment{}, &TicketType{}, &Ticket{},
		&Hotel{}, &Room{}, &Booking{}, &BookingEvent{},
	}
}
