package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/httpresp"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/usecase/account"
)

type AuthHandler struct {
	register       *account.Register
	login          *account.Login
	logout         *account.Logout
	changePassword *account.ChangePassword
	logger         log.Logger
}

func NewAuthHandler(
	register *account.Register,
	login *account.Login,
	logout *account.Logout,
	changePassword *account.ChangePassword,
	logger log.Logger,
) *AuthHandler {
	return &AuthHandler{
		register:       register,
		login:          login,
		logout:         logout,
		changePassword: changePassword,
		logger:         logger,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	user, err := h.register.Execute(c.Request.Context(), account.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.Created(c, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, gin.H{
		"token":      res.Session.Token,
		"expires_at": res.Session.ExpiresAt,
		"role":       res.Role,
		"user":       res.User,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.Token(c)); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}
	httpresp.OK(c, gin.H{"logged_out": true})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	err := h.changePassword.Execute(
		c.Request.Context(),
		middleware.Token(c),
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		httperr.Respond(c, h.logger, err)
		return
	}

	httpresp.OK(c, gin.H{"password_changed": true})
}
