package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/httpresp"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/usecase/review"
)

type ReviewHandler struct {
	create *review.CreateReview
	list   *review.ListPropertyReviews
	logger log.Logger
}

func NewReviewHandler(create *review.CreateReview, list *review.ListPropertyReviews, logger log.Logger) *ReviewHandler {
	return &ReviewHandler{create: create, list: list, logger: logger}
}

type CreateReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	r, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), review.CreateReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Created(c, r)
}

func (h *ReviewHandler) ListForProperty(c *gin.Context) {
	id, err := pathID(c, "id", "invalid_property_id")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	res, err := h.list.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, res)
}
