package domain

import (
	"github.com/qs-lzh/hotel-booking/internal/model"
	"github.com/qs-lzh/hotel-booking/internal/service"
)

// CheckEligibility allows a booking only for a paid, in-person ticket that
// includes hotel. Every other case, a missing ticket included, fails with the
// same error.
func CheckEligibility(ticket *model.Ticket) error {
	if ticket == nil {
		return service.ErrIneligibleTicket
	}
	if ticket.Status != model.TicketStatusPaid ||
		!ticket.TicketType.IncludesHotel ||
		ticket.TicketType.IsRemote {
		return service.ErrIneligibleTicket
	}
	return nil
}
