package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/guard"
	"github.com/VaibhaviS123/SafeStay/internal/infra/memory"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"Bearer abc":      "abc",
		"bearer  abc ":    "abc",
		"Basic abc":       "",
		"Bearer":          "",
		"Token something": "",
	}
	for header, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		require.Equal(t, want, middleware.BearerToken(c), header)
	}
}

type harness struct {
	engine *gin.Engine
	token  string
	userID uuid.UUID
	prop   uuid.UUID
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	repos := memory.NewStore().Repos()
	provider := auth.NewJWTProvider(repos.Accounts, auth.NewTokenIssuer("secret", time.Hour), auth.NewMemoryRevoker())
	g := guard.New(provider, repos.Accounts, repos.Properties)

	id, err := provider.SignUp(ctx, "owner@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, repos.Accounts.CreateUser(ctx, &models.User{
		ID: id, FullName: "Owner", Email: "owner@example.com", Role: models.RoleOwner,
	}))
	session, err := provider.SignIn(ctx, "owner@example.com", "secret123")
	require.NoError(t, err)

	p := models.Property{OwnerID: id, Name: "Villa", City: "Goa", Area: "Anjuna", MaxGuests: 2}
	require.NoError(t, repos.Properties.CreateProperty(ctx, &p))

	logger := log.NewNopLogger()
	r := gin.New()
	r.GET("/who", middleware.Authenticated(g, logger), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.UserID(c).String())
	})
	r.GET("/guests", middleware.RequireRole(g, models.RoleGuest, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/owners", middleware.RequireRole(g, models.RoleOwner, logger), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.UserFrom(c).FullName)
	})
	r.GET("/properties/:id", middleware.RequireOwnerOf(g, "id", logger), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.Token(c))
	})

	return &harness{engine: r, token: session.Token, userID: id, prop: p.ID}
}

func (h *harness) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Success)
	return body.ErrorCode
}

func TestAuthenticated(t *testing.T) {
	h := newHarness(t)

	w := h.get("/who", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "unauthenticated", errorCode(t, w))

	w = h.get("/who", h.token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, h.userID.String(), w.Body.String())
}

func TestRequireRole(t *testing.T) {
	h := newHarness(t)

	w := h.get("/guests", h.token)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "role_required", errorCode(t, w))

	w = h.get("/owners", h.token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Owner", w.Body.String())
}

func TestRequireOwnerOf(t *testing.T) {
	h := newHarness(t)

	w := h.get("/properties/not-a-uuid", h.token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "invalid_property_id", errorCode(t, w))

	w = h.get("/properties/"+uuid.NewString(), h.token)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = h.get("/properties/"+h.prop.String(), h.token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, h.token, w.Body.String())
}
