package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gorm.io/gorm"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/auth"
	accountdomain "github.com/VaibhaviS123/SafeStay/internal/domain/account"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	propertydomain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	reviewdomain "github.com/VaibhaviS123/SafeStay/internal/domain/review"
	"github.com/VaibhaviS123/SafeStay/internal/guard"
	"github.com/VaibhaviS123/SafeStay/internal/handlers"
	"github.com/VaibhaviS123/SafeStay/internal/infra/memory"
	infraRepo "github.com/VaibhaviS123/SafeStay/internal/infra/repository"
	"github.com/VaibhaviS123/SafeStay/internal/middleware"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/storage"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
	ucAccount "github.com/VaibhaviS123/SafeStay/internal/usecase/account"
	ucAuditLog "github.com/VaibhaviS123/SafeStay/internal/usecase/auditlog"
	ucBooking "github.com/VaibhaviS123/SafeStay/internal/usecase/booking"
	ucProperty "github.com/VaibhaviS123/SafeStay/internal/usecase/property"
	ucReview "github.com/VaibhaviS123/SafeStay/internal/usecase/review"
	"github.com/VaibhaviS123/SafeStay/internal/validators"
)

// AccountStore holds profiles and the credentials behind them.
type AccountStore interface {
	accountdomain.Repository
	auth.CredentialStore
}

// Repositories is one datastore seen through every domain's interface.
type Repositories struct {
	Bookings   bookingdomain.Repository
	Properties propertydomain.Repository
	Reviews    reviewdomain.Repository
	Accounts   AccountStore
	Audit      audit.Store
}

func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Bookings:   infraRepo.NewBookingGormRepository(db),
		Properties: infraRepo.NewPropertyGormRepository(db),
		Reviews:    infraRepo.NewReviewGormRepository(db),
		Accounts:   infraRepo.NewAccountGormRepository(db),
		Audit:      infraRepo.NewAuditGormRepository(db),
	}
}

func MemoryRepositories(r memory.Repos) Repositories {
	return Repositories{
		Bookings:   r.Bookings,
		Properties: r.Properties,
		Reviews:    r.Reviews,
		Accounts:   r.Accounts,
		Audit:      r.Audit,
	}
}

type Deps struct {
	Repos    Repositories
	Provider auth.Provider
	Images   storage.ImageStore
	Audit    audit.Recorder

	Policy   bookingdomain.Policy
	Location *time.Location
	Clock    timezone.Clock

	Logger log.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	if err := validators.RegisterGin(); err != nil {
		level.Error(d.Logger).Log("msg", "request validation tags not registered", "err", err)
	}

	// ======================================================
	// GUARD
	// ======================================================
	g := guard.New(d.Provider, d.Repos.Accounts, d.Repos.Properties)

	authenticated := middleware.Authenticated(g, d.Logger)
	ownerOnly := middleware.RequireRole(g, models.RoleOwner, d.Logger)
	guestOnly := middleware.RequireRole(g, models.RoleGuest, d.Logger)
	ownerOf := middleware.RequireOwnerOf(g, "id", d.Logger)

	// ======================================================
	// BOOKINGS
	// ======================================================
	engine := ucBooking.NewSetBookingStatus(d.Repos.Bookings, d.Policy, d.Clock, d.Location, d.Audit)

	bookingHandler := handlers.NewBookingHandler(handlers.BookingUseCases{
		Create:       ucBooking.NewCreateBooking(d.Repos.Bookings, d.Clock, d.Location, d.Audit),
		Availability: ucBooking.NewCheckAvailability(d.Repos.Bookings),
		Get:          ucBooking.NewGetBooking(d.Repos.Bookings),
		SetStatus:    engine,
		Cancel:       ucBooking.NewCancelBooking(engine),
		Approve:      ucBooking.NewApproveBooking(engine),
		Reject:       ucBooking.NewRejectBooking(engine),
		CheckIn:      ucBooking.NewCheckIn(engine),
		CheckOut:     ucBooking.NewCheckOut(engine),
		ListGuest:    ucBooking.NewListGuestBookings(d.Repos.Bookings),
		ListOwner:    ucBooking.NewListOwnerBookings(d.Repos.Bookings),
	}, d.Logger)

	// ======================================================
	// PROPERTIES / REVIEWS / ACCOUNTS
	// ======================================================
	propertyHandler := handlers.NewPropertyHandler(handlers.PropertyUseCases{
		Create: ucProperty.NewCreateProperty(d.Repos.Properties, d.Audit),
		Update: ucProperty.NewUpdateProperty(d.Repos.Properties, d.Audit),
		Delete: ucProperty.NewDeleteProperty(d.Repos.Properties, d.Images, d.Audit, d.Logger),
		Get:    ucProperty.NewGetProperty(d.Repos.Properties, d.Images, d.Logger),
		Search: ucProperty.NewSearchProperties(d.Repos.Properties, d.Images, d.Logger),
		Mine:   ucProperty.NewListMyProperties(d.Repos.Properties, d.Images, d.Logger),
	}, d.Logger)

	reviewHandler := handlers.NewReviewHandler(
		ucReview.NewCreateReview(d.Repos.Reviews, d.Audit),
		ucReview.NewListPropertyReviews(d.Repos.Reviews),
		d.Logger,
	)

	authHandler := handlers.NewAuthHandler(
		ucAccount.NewRegister(d.Provider, d.Repos.Accounts, d.Audit),
		ucAccount.NewLogin(d.Provider, d.Repos.Accounts),
		ucAccount.NewLogout(d.Provider),
		ucAccount.NewChangePassword(d.Provider, d.Repos.Accounts),
		d.Logger,
	)

	meHandler := handlers.NewMeHandler(
		ucAccount.NewGetProfile(d.Repos.Accounts),
		ucAccount.NewUpdateProfile(g, d.Repos.Accounts, d.Audit),
		d.Logger,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(ucAuditLog.NewListAuditLogs(d.Repos.Audit), d.Logger)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/health", handlers.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authenticated, authHandler.Logout)
		authGroup.POST("/password", authenticated, authHandler.ChangePassword)
	}

	properties := api.Group("/properties")
	{
		properties.GET("", propertyHandler.Search)
		properties.GET("/:id", propertyHandler.Get)
		properties.GET("/:id/availability", bookingHandler.Availability)
		properties.GET("/:id/reviews", reviewHandler.ListForProperty)
	}

	// ======================================================
	// SIGNED IN
	// ======================================================
	me := api.Group("/me")
	{
		me.GET("", authenticated, meHandler.GetMe)
		me.PATCH("", authenticated, meHandler.UpdateMe)
		me.GET("/audit-logs", authenticated, auditLogsHandler.List)

		me.GET("/properties", ownerOnly, propertyHandler.ListMine)
		me.POST("/properties", ownerOnly, propertyHandler.Create)
		me.PUT("/properties/:id", ownerOf, propertyHandler.Update)
		me.DELETE("/properties/:id", ownerOf, propertyHandler.Delete)

		me.POST("/bookings", guestOnly, bookingHandler.Create)
		me.GET("/bookings", guestOnly, bookingHandler.ListMine)
		me.GET("/bookings/:id", authenticated, bookingHandler.Get)
		me.PATCH("/bookings/:id/status", authenticated, bookingHandler.SetStatus)
		me.PATCH("/bookings/:id/cancel", authenticated, bookingHandler.Cancel())
		me.PATCH("/bookings/:id/check-in", authenticated, bookingHandler.CheckIn())
		me.PATCH("/bookings/:id/check-out", authenticated, bookingHandler.CheckOut())

		me.POST("/reviews", guestOnly, reviewHandler.Create)
	}

	owner := api.Group("/owner", ownerOnly)
	{
		owner.GET("/bookings", bookingHandler.ListOwner)
		owner.PATCH("/bookings/:id/approve", bookingHandler.Approve())
		owner.PATCH("/bookings/:id/reject", bookingHandler.Reject())
	}
}
