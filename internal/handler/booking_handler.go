package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qs-lzh/hotel-booking/internal/app"
	"github.com/qs-lzh/hotel-booking/internal/middleware"
	"github.com/qs-lzh/hotel-booking/internal/service/domain"
)

type BookingHandler struct {
	app *app.App
}

func NewBookingHandler(app *app.App) *BookingHandler {
	return &BookingHandler{
		app: app,
	}
}

type BookingRequest struct {
	RoomID uint `json:"roomId"`
}

type BookingResponse struct {
	BookingID uint `json:"bookingId"`
}

// bindBookingRequest treats an empty body like a body without roomId.
func bindBookingRequest(ctx *gin.Context) (BookingRequest, bool) {
	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(ctx, err)
		return req, false
	}
	return req, true
}

func (h *BookingHandler) HandleGetBooking(ctx *gin.Context) {
	view, err := h.app.BookingWorkflow.CurrentBooking(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(http.StatusOK, view)
}

func (h *BookingHandler) HandleCreateBooking(ctx *gin.Context) {
	req, ok := bindBookingRequest(ctx)
	if !ok {
		return
	}

	bookingID, err := h.app.BookingWorkflow.Book(ctx.Request.Context(), middleware.UserID(ctx), req.RoomID)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(http.StatusOK, BookingResponse{BookingID: bookingID})
}

func (h *BookingHandler) HandleReassignBooking(ctx *gin.Context) {
	bookingID, err := domain.ParseBookingID(ctx.Param("bookingId"))
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	req, ok := bindBookingRequest(ctx)
	if !ok {
		return
	}

	bookingID, err = h.app.BookingWorkflow.Reassign(ctx.Request.Context(), middleware.UserID(ctx), bookingID, req.RoomID)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(http.StatusOK, BookingResponse{BookingID: bookingID})
}

func (h *BookingHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.app.AuditService.ListBookingEvents(ctx.Request.Context(), middleware.UserID(ctx))
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}
