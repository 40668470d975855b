package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/guard"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

const (
	ContextIdentity = "identity"
	ContextUser     = "user"
	ContextToken    = "token"
)

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when the header is missing or malformed.
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Authenticated rejects requests without a live session.
func Authenticated(g *guard.Guard, logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		ident, err := g.Authenticate(c.Request.Context(), token)
		if err != nil {
			abort(c, logger, err)
			return
		}

		c.Set(ContextToken, token)
		c.Set(ContextIdentity, ident)
		c.Next()
	}
}

// RequireRole rejects callers whose profile does not carry role.
func RequireRole(g *guard.Guard, role string, logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		ident, user, err := g.RequireRole(c.Request.Context(), token, role)
		if err != nil {
			abort(c, logger, err)
			return
		}

		c.Set(ContextToken, token)
		c.Set(ContextIdentity, ident)
		c.Set(ContextUser, user)
		c.Next()
	}
}

// RequireOwnerOf rejects callers who do not own the property named by the
// route parameter param.
func RequireOwnerOf(g *guard.Guard, param string, logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID, err := uuid.Parse(c.Param(param))
		if err != nil {
			abort(c, logger, httperr.Validation("invalid_property_id", "Invalid property id."))
			return
		}

		token := BearerToken(c)
		ident, err := g.RequireOwnerOf(c.Request.Context(), token, propertyID)
		if err != nil {
			abort(c, logger, err)
			return
		}

		c.Set(ContextToken, token)
		c.Set(ContextIdentity, ident)
		c.Next()
	}
}

func abort(c *gin.Context, logger log.Logger, err error) {
	httperr.Respond(c, logger, err)
	c.Abort()
}

// ------------------------------------------------------------
// Context accessors
// ------------------------------------------------------------

func IdentityFrom(c *gin.Context) *auth.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	ident, _ := v.(*auth.Identity)
	return ident
}

// UserID is uuid.Nil on routes without an auth middleware.
func UserID(c *gin.Context) uuid.UUID {
	if ident := IdentityFrom(c); ident != nil {
		return ident.UserID
	}
	return uuid.Nil
}

func UserFrom(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

func Token(c *gin.Context) string {
	return c.GetString(ContextToken)
}
