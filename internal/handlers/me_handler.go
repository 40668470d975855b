package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/httpresp"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/usecase/account"
)

type MeHandler struct {
	getProfile    *account.GetProfile
	updateProfile *account.UpdateProfile
	logger        log.Logger
}

func NewMeHandler(getProfile *account.GetProfile, updateProfile *account.UpdateProfile, logger log.Logger) *MeHandler {
	return &MeHandler{getProfile: getProfile, updateProfile: updateProfile, logger: logger}
}

// UpdateProfileRequest has no email or role field; both are read-only.
type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Bio      string `json:"bio"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.getProfile.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}
	httpresp.OK(c, user)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	user, err := h.updateProfile.Execute(
		c.Request.Context(),
		middleware.Token(c),
		middleware.UserID(c),
		account.ProfileInput{
			FullName: req.FullName,
			Phone:    req.Phone,
			Address:  req.Address,
			City:     req.City,
			Bio:      req.Bio,
		},
	)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, user)
}
