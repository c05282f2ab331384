// Package testutil builds throwaway sqlite databases and fixture rows for tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/database"
	"github.com/qs-lzh/hotel-booking/internal/model"
)

var dbSeq atomic.Int64

// NewDB returns a migrated in-memory sqlite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_busy_timeout=5000", name, dbSeq.Add(1))
	db, err := database.Open(database.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// one connection keeps the shared in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("failed to create %T: %v", value, err)
	}
}

func CreateUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := &model.User{
		Email:    fmt.Sprintf("user%d@example.com", dbSeq.Add(1)),
		Password: "not-a-real-hash",
	}
	mustCreate(t, db, user)
	return user
}

func CreateHotel(t *testing.T, db *gorm.DB) *model.Hotel {
	t.Helper()
	hotel := &model.Hotel{
		Name:  fmt.Sprintf("Hotel %d", dbSeq.Add(1)),
		Image: "https://example.com/hotel.png",
	}
	mustCreate(t, db, hotel)
	return hotel
}

func CreateRoom(t *testing.T, db *gorm.DB, hotelID uint, capacity int) *model.Room {
	t.Helper()
	room := &model.Room{
		Name:     fmt.Sprintf("Room %d", dbSeq.Add(1)),
		Capacity: capacity,
		HotelID:  hotelID,
	}
	mustCreate(t, db, room)
	return room
}

// CreateHotelAndRoom creates a hotel with a single room of the given capacity.
func CreateHotelAndRoom(t *testing.T, db *gorm.DB, capacity int) *model.Room {
	t.Helper()
	hotel := CreateHotel(t, db)
	return CreateRoom(t, db, hotel.ID, capacity)
}

func CreateEnrollment(t *testing.T, db *gorm.DB, userID uint) *model.Enrollment {
	t.Helper()
	enrollment := &model.Enrollment{
		UserID:   userID,
		Name:     "Test Attendee",
		Cpf:      "000.000.000-00",
		Birthday: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Phone:    "+55 21 99999-9999",
	}
	mustCreate(t, db, enrollment)
	return enrollment
}

func CreateTicketType(t *testing.T, db *gorm.DB, isRemote, includesHotel bool) *model.TicketType {
	t.Helper()
	ticketType := &model.TicketType{
		Name:          "Conference pass",
		Price:         250,
		IsRemote:      isRemote,
		IncludesHotel: includesHotel,
	}
	mustCreate(t, db, ticketType)
	return ticketType
}

func CreateTicket(t *testing.T, db *gorm.DB, enrollmentID, ticketTypeID uint, status model.TicketStatus) *model.Ticket {
	t.Helper()
	ticket := &model.Ticket{
		EnrollmentID: enrollmentID,
		TicketTypeID: ticketTypeID,
		Status:       status,
	}
	mustCreate(t, db, ticket)
	return ticket
}

// CreateEligibleUser creates a user holding a paid, in-person ticket that includes hotel.
func CreateEligibleUser(t *testing.T, db *gorm.DB) *model.User {
	t.Helper()
	user := CreateUser(t, db)
	enrollment := CreateEnrollment(t, db, user.ID)
	ticketType := CreateTicketType(t, db, false, true)
	CreateTicket(t, db, enrollment.ID, ticketType.ID, model.TicketStatusPaid)
	return user
}

func CreateBooking(t *testing.T, db *gorm.DB, userID, roomID uint) *model.Booking {
	t.Helper()
	booking := &model.Booking{
		UserID: userID,
		RoomID: roomID,
	}
	mustCreate(t, db, booking)
	return booking
}
