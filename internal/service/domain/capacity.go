package domain

import (
	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/service"
)

// CheckCapacity passes while the room has a free bed. The room must exist.
func CheckCapacity(room *model.Room, occupancy int64) error {
	if occupancy >= int64(room.Capacity) {
		return service.ErrRoomAtCapacity
	}
	return nil
}
