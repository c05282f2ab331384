package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/testutil"
)

func TestBookingRepo_GetByUserID(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingRepoGorm(db)
	ctx := context.Background()

	user := testutil.CreateUser(t, db)
	_, err := repo.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	roomA := testutil.CreateHotelAndRoom(t, db, 2)
	roomB := testutil.CreateHotelAndRoom(t, db, 2)
	first := testutil.CreateBooking(t, db, user.ID, roomA.ID)
	testutil.CreateBooking(t, db, user.ID, roomB.ID)

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, roomA.ID, got.Room.ID)
	assert.Equal(t, roomA.Name, got.Room.Name)
}

func TestBookingRepo_RoomQueries(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingRepoGorm(db)
	ctx := context.Background()

	room := testutil.CreateHotelAndRoom(t, db, 3)
	empty := testutil.CreateHotelAndRoom(t, db, 3)
	user := testutil.CreateUser(t, db)
	other := testutil.CreateUser(t, db)
	booking := testutil.CreateBooking(t, db, user.ID, room.ID)
	testutil.CreateBooking(t, db, other.ID, room.ID)

	count, err := repo.CountByRoomID(ctx, room.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByRoomID(ctx, empty.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	got, err := repo.GetByRoomID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)

	_, err = repo.GetByRoomID(ctx, empty.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepo_GetByIDAndUserID(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingRepoGorm(db)
	ctx := context.Background()

	room := testutil.CreateHotelAndRoom(t, db, 3)
	owner := testutil.CreateUser(t, db)
	stranger := testutil.CreateUser(t, db)
	booking := testutil.CreateBooking(t, db, owner.ID, room.ID)

	got, err := repo.GetByIDAndUserID(ctx, booking.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.RoomID)

	_, err = repo.GetByIDAndUserID(ctx, booking.ID, stranger.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBookingRepo_UpdateRoom(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingRepoGorm(db)
	ctx := context.Background()

	roomA := testutil.CreateHotelAndRoom(t, db, 3)
	roomB := testutil.CreateHotelAndRoom(t, db, 3)
	user := testutil.CreateUser(t, db)
	booking := testutil.CreateBooking(t, db, user.ID, roomA.ID)

	require.NoError(t, repo.UpdateRoom(ctx, booking.ID, roomB.ID))

	var stored model.Booking
	require.NoError(t, db.First(&stored, booking.ID).Error)
	assert.Equal(t, roomB.ID, stored.RoomID)
	assert.Equal(t, user.ID, stored.UserID)
	assert.False(t, stored.UpdatedAt.Before(booking.UpdatedAt))

	assert.ErrorIs(t, repo.UpdateRoom(ctx, booking.ID+100, roomB.ID), gorm.ErrRecordNotFound)
}

func TestBookingRepo_WithTxRollsBack(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewBookingRepoGorm(db)
	ctx := context.Background()

	room := testutil.CreateHotelAndRoom(t, db, 3)
	user := testutil.CreateUser(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := repo.WithTx(tx).Create(ctx, &model.Booking{UserID: user.ID, RoomID: room.ID}); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	require.ErrorIs(t, err, gorm.ErrInvalidTransaction)

	count, err := repo.CountByRoomID(ctx, room.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRoomRepo_Get(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewRoomRepoGorm(db)
	ctx := context.Background()

	room := testutil.CreateHotelAndRoom(t, db, 4)

	got, err := repo.GetByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Capacity)

	err = db.Transaction(func(tx *gorm.DB) error {
		locked, err := repo.WithTx(tx).GetByIDForUpdate(ctx, room.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, room.HotelID, locked.HotelID)
		return nil
	})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, room.ID+100)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestTicketRepo_PreloadsTicketType(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db)
	enrollment := testutil.CreateEnrollment(t, db, user.ID)
	ticketType := testutil.CreateTicketType(t, db, false, true)
	testutil.CreateTicket(t, db, enrollment.ID, ticketType.ID, model.TicketStatusPaid)

	gotEnrollment, err := NewEnrollmentRepoGorm(db).GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment.ID, gotEnrollment.ID)

	ticket, err := NewTicketRepoGorm(db).GetByEnrollmentID(ctx, enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TicketStatusPaid, ticket.Status)
	assert.True(t, ticket.TicketType.IncludesHotel)
	assert.False(t, ticket.TicketType.IsRemote)
}
