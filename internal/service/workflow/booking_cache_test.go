package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/qs-lzh/hotel-booking/internal/cache"
	"github.com/qs-lzh/hotel-booking/internal/repository"
	"github.com/qs-lzh/hotel-booking/internal/service/domain"
	"github.com/qs-lzh/hotel-booking/internal/testutil"
)

// hookedBookingService runs afterRead once, right after the store read of
// GetCurrentBooking and before the workflow fills the cache.
type hookedBookingService struct {
	domain.BookingService
	afterRead func()
}

func (s *hookedBookingService) GetCurrentBooking(ctx context.Context, userID uint) (*domain.BookingView, error) {
	view, err := s.BookingService.GetCurrentBooking(ctx, userID)
	if hook := s.afterRead; hook != nil {
		s.afterRead = nil
		hook()
	}
	return view, err
}

func TestCurrentBooking_ReassignDuringFillIsNotCached(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	user := testutil.CreateUser(t, db)
	roomA := testutil.CreateHotelAndRoom(t, db, 2)
	roomB := testutil.CreateHotelAndRoom(t, db, 2)
	booking := testutil.CreateBooking(t, db, user.ID, roomA.ID)

	mr := miniredis.RunT(t)
	redisCache, err := cache.NewRedisCache(mr.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { redisCache.Close() })

	svc := &hookedBookingService{
		BookingService: domain.NewBookingService(db,
			repository.NewBookingRepoGorm(db),
			repository.NewRoomRepoGorm(db),
			repository.NewEnrollmentRepoGorm(db),
			repository.NewTicketRepoGorm(db),
		),
	}
	publisher := &mockPublisher{}
	publisher.On("PublishBookingEvent", mock.Anything, mock.Anything).Return(nil)
	w := NewBookingWorkflow(svc, redisCache, publisher, zap.NewNop())

	svc.afterRead = func() {
		_, err := w.Reassign(ctx, user.ID, booking.ID, roomB.ID)
		require.NoError(t, err)
	}

	// this read started before the reassign committed
	first, err := w.CurrentBooking(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, roomA.ID, first.Room.ID)
	assert.False(t, mr.Exists(cache.MakeUserBookingKey(user.ID)))

	current, err := w.CurrentBooking(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, roomB.ID, current.Room.ID)

	cached, err := w.CurrentBooking(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, roomB.ID, cached.Room.ID)
	assert.True(t, mr.Exists(cache.MakeUserBookingKey(user.ID)))
	publisher.AssertNumberOfCalls(t, "PublishBookingEvent", 1)
}
