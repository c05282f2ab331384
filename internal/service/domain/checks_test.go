package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/service"
)

func TestCheckEligibility(t *testing.T) {
	ticket := func(status model.TicketStatus, isRemote, includesHotel bool) *model.Ticket {
		return &model.Ticket{
			Status:     status,
			TicketType: model.TicketType{IsRemote: isRemote, IncludesHotel: includesHotel},
		}
	}

	tests := []struct {
		name   string
		ticket *model.Ticket
		want   error
	}{
		{"paid in-person with hotel", ticket(model.TicketStatusPaid, false, true), nil},
		{"no ticket", nil, service.ErrIneligibleTicket},
		{"reserved", ticket(model.TicketStatusReserved, false, true), service.ErrIneligibleTicket},
		{"remote", ticket(model.TicketStatusPaid, true, true), service.ErrIneligibleTicket},
		{"without hotel", ticket(model.TicketStatusPaid, false, false), service.ErrIneligibleTicket},
		{"remote without hotel", ticket(model.TicketStatusPaid, true, false), service.ErrIneligibleTicket},
		{"unknown status", ticket("EXPIRED", false, true), service.ErrIneligibleTicket},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, CheckEligibility(tt.ticket), tt.want)
		})
	}
}

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		occupancy int64
		wantErr   bool
	}{
		{"empty room", 5, 0, false},
		{"one bed left", 5, 4, false},
		{"full", 5, 5, true},
		{"single bed taken", 1, 1, true},
		{"over capacity", 2, 3, true},
		{"zero capacity", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCapacity(&model.Room{Capacity: tt.capacity}, tt.occupancy)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrRoomAtCapacity)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
