package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"

	propertydomain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/httpresp"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/usecase/property"
)

// ======================================================
// HANDLER
// ======================================================

type PropertyHandler struct {
	create *property.CreateProperty
	update *property.UpdateProperty
	delete *property.DeleteProperty
	get    *property.GetProperty
	search *property.SearchProperties
	mine   *property.ListMyProperties
	logger log.Logger
}

type PropertyUseCases struct {
	Create *property.CreateProperty
	Update *property.UpdateProperty
	Delete *property.DeleteProperty
	Get    *property.GetProperty
	Search *property.SearchProperties
	Mine   *property.ListMyProperties
}

func NewPropertyHandler(uc PropertyUseCases, logger log.Logger) *PropertyHandler {
	return &PropertyHandler{
		create: uc.Create,
		update: uc.Update,
		delete: uc.Delete,
		get:    uc.Get,
		search: uc.Search,
		mine:   uc.Mine,
		logger: logger,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	City        string `json:"city" binding:"required"`
	Area        string `json:"area" binding:"required"`
	Location    string `json:"location"`
	Address     string `json:"address"`
	Description string `json:"description"`
	SafetyRules string `json:"safety_rules"`

	PricePerNight *float64 `json:"price_per_night"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	MaxGuests     int      `json:"max_guests"`
	PropertyType  string   `json:"property_type" binding:"omitempty,propertytype"`

	Amenities []string `json:"amenities"`
	Images    []string `json:"images"`
}

func (r PropertyRequest) input() property.PropertyInput {
	return property.PropertyInput{
		Name:          r.Name,
		City:          r.City,
		Area:          r.Area,
		Location:      r.Location,
		Address:       r.Address,
		Description:   r.Description,
		SafetyRules:   r.SafetyRules,
		PricePerNight: r.PricePerNight,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		MaxGuests:     r.MaxGuests,
		PropertyType:  r.PropertyType,
		Amenities:     r.Amenities,
		Images:        r.Images,
	}
}

type SearchRequest struct {
	City         string   `form:"city"`
	Query        string   `form:"q"`
	PropertyType string   `form:"property_type"`
	MinGuests    int      `form:"guests"`
	MaxPrice     *float64 `form:"max_price"`
	Limit        int      `form:"limit"`
	Offset       int      `form:"offset"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *PropertyHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := bindQuery(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	props, err := h.search.Execute(c.Request.Context(), propertydomain.SearchFilter{
		City:         req.City,
		Query:        req.Query,
		PropertyType: req.PropertyType,
		MinGuests:    req.MinGuests,
		MaxPrice:     req.MaxPrice,
		Limit:        req.Limit,
		Offset:       req.Offset,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.List(c, props)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "invalid_property_id")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	p, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, p)
}

// ======================================================
// OWNER
// ======================================================

func (h *PropertyHandler) ListMine(c *gin.Context) {
	props, err := h.mine.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}
	httpresp.List(c, props)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var req PropertyRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.UserID(c), req.input())
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Created(c, p)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", "invalid_property_id")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	var req PropertyRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	p, err := h.update.Execute(c.Request.Context(), id, middleware.UserID(c), req.input())
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, p)
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", "invalid_property_id")
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": true})
}
