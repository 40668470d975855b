package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/google/uuid"

	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/httpresp"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingUseCases struct {
	Create       *booking.CreateBooking
	Availability *booking.CheckAvailability
	Get          *booking.GetBooking
	SetStatus    *booking.SetBookingStatus
	Cancel       *booking.CancelBooking
	Approve      *booking.ApproveBooking
	Reject       *booking.RejectBooking
	CheckIn      *booking.CheckIn
	CheckOut     *booking.CheckOut
	ListGuest    *booking.ListGuestBookings
	ListOwner    *booking.ListOwnerBookings
}

type BookingHandler struct {
	uc     BookingUseCases
	logger log.Logger
}

func NewBookingHandler(uc BookingUseCases, logger log.Logger) *BookingHandler {
	return &BookingHandler{uc: uc, logger: logger}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	PropertyID      uuid.UUID `json:"property_id" binding:"required"`
	CheckIn         string    `json:"check_in" binding:"omitempty,date"`
	CheckOut        string    `json:"check_out" binding:"omitempty,date"`
	Guests          int       `json:"guests"`
	SpecialRequests string    `json:"special_requests"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailabilityRequest struct {
	CheckIn  string `form:"check_in" binding:"omitempty,date"`
	CheckOut string `form:"check_out" binding:"omitempty,date"`
}

// ======================================================
// CREATE / READ
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	b, err := h.uc.Create.Execute(c.Request.Context(), booking.CreateBookingInput{
		PropertyID:      req.PropertyID,
		GuestID:         middleware.UserID(c),
		CheckIn:         optionalDate(req.CheckIn),
		CheckOut:        optionalDate(req.CheckOut),
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) Availability(c *gin.Context) {
	propertyID, err := pathID(c, "id", "invalid_property_id")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	var req AvailabilityRequest
	if err := bindQuery(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	res, err := h.uc.Availability.Execute(c.Request.Context(), bookingdomain.AvailabilityInput{
		PropertyID: propertyID,
		CheckIn:    optionalDate(req.CheckIn),
		CheckOut:   optionalDate(req.CheckOut),
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, res)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "invalid_booking_id")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	b, err := h.uc.Get.Execute(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	res, err := h.uc.ListGuest.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}
	httpresp.OK(c, res)
}

// ListOwner accepts ?status=pending,confirmed or repeated status params.
func (h *BookingHandler) ListOwner(c *gin.Context) {
	bookings, err := h.uc.ListOwner.Execute(
		c.Request.Context(),
		middleware.UserID(c),
		csv(c.QueryArray("status")),
	)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}
	httpresp.List(c, bookings)
}

// ======================================================
// STATUS CHANGES
// ======================================================

func (h *BookingHandler) SetStatus(c *gin.Context) {
	id, err := pathID(c, "id", "invalid_booking_id")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	var req SetStatusRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	b, err := h.uc.SetStatus.Execute(c.Request.Context(), booking.SetStatusInput{
		BookingID: id,
		CallerID:  middleware.UserID(c),
		Status:    req.Status,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, b)
}

type transitionFunc func(ctx context.Context, bookingID, callerID uuid.UUID) (*models.Booking, error)

func (h *BookingHandler) transition(run transitionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, "id", "invalid_booking_id")
		if err != nil {
			httperr.Respond(c, h.logger, err)
			return
		}

		b, err := run(c.Request.Context(), id, middleware.UserID(c))
		if err != nil {
			httperr.Respond(c, h.logger, err)
			return
		}

		httpresp.OK(c, b)
	}
}

func (h *BookingHandler) Cancel() gin.HandlerFunc   { return h.transition(h.uc.Cancel.Execute) }
func (h *BookingHandler) Approve() gin.HandlerFunc  { return h.transition(h.uc.Approve.Execute) }
func (h *BookingHandler) Reject() gin.HandlerFunc   { return h.transition(h.uc.Reject.Execute) }
func (h *BookingHandler) CheckIn() gin.HandlerFunc  { return h.transition(h.uc.CheckIn.Execute) }
func (h *BookingHandler) CheckOut() gin.HandlerFunc { return h.transition(h.uc.CheckOut.Execute) }
