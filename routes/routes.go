package routes

import (
	"github.com/gin-gonic/gin"

	"tourbase/handlers"
	"tourbase/middleware"
)

// Handlers collects the endpoint handlers the router wires up.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Tour    *handlers.TourHandler
	Booking *handlers.BookingHandler
	Gallery *handlers.GalleryHandler
	Review  *handlers.ReviewHandler
}

// Register attaches all endpoints to the router.
func Register(r *gin.Engine, h *Handlers) {
	r.GET("/health", handlers.Health)

	registerAuthRoutes(r, h)
	registerTourRoutes(r, h)
	registerBookingRoutes(r, h)
	registerGalleryRoutes(r, h)
}

func registerAuthRoutes(r *gin.Engine, h *Handlers) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/signin", h.Auth.SignIn)
	}

	me := r.Group("/api/me", middleware.JWTAuthUserMiddleware())
	{
		me.GET("", h.Auth.Me)
		me.POST("/signout", h.Auth.SignOut)
		me.POST("/device", h.Auth.RegisterFCMToken)
		me.GET("/bookings", h.Booking.MyBookings)
	}
}

func registerTourRoutes(r *gin.Engine, h *Handlers) {
	// Public storefront endpoints.
	tours := r.Group("/api/tours")
	{
		tours.GET("", h.Tour.ListTours)
		tours.GET("/:id", h.Tour.GetTour)
		tours.GET("/:id/departures", h.Tour.ListDepartures)
		tours.GET("/:id/price", h.Tour.CardPrice)
		tours.GET("/:id/reviews", h.Review.ListApproved)
	}

	// Review submission requires a signed-in customer.
	r.POST("/api/tours/:id/reviews", middleware.JWTAuthUserMiddleware(), h.Review.Submit)

	// Dashboard endpoints.
	admin := r.Group("/api/admin", middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware())
	{
		admin.GET("/tours", h.Tour.ListToursAdmin)
		admin.POST("/tours", h.Tour.CreateTour)
		admin.PATCH("/tours/:id", h.Tour.UpdateTour)
		admin.DELETE("/tours/:id", h.Tour.DeleteTour)

		admin.GET("/tours/:id/reviews", h.Review.ListForModeration)
		admin.PATCH("/reviews/:reviewID", h.Review.Moderate)
	}
}

// registerBookingRoutes registers the three-phase booking flow.
func registerBookingRoutes(r *gin.Engine, h *Handlers) {
	booking := r.Group("/api/booking", middleware.JWTAuthUserMiddleware())
	{
		booking.POST("/session", h.Booking.InitiateSession)               // Phase 1: start session
		booking.PUT("/session/:sessionID", h.Booking.UpdateSession)       // Phase 2: select departure and travellers
		booking.POST("/confirm", h.Booking.Confirm)                       // Phase 3: confirm booking
		booking.DELETE("/session/:sessionID", h.Booking.CancelSession)
	}
}

// registerGalleryRoutes registers the media manager, admin only.
func registerGalleryRoutes(r *gin.Engine, h *Handlers) {
	gallery := r.Group("/api/gallery", middleware.JWTAuthUserMiddleware(), middleware.JWTAuthAdminMiddleware())
	{
		gallery.POST("", h.Gallery.Upload)
		gallery.GET("", h.Gallery.List)
		gallery.GET("/:id", h.Gallery.Get)
		gallery.PATCH("/:id", h.Gallery.Update)
		gallery.DELETE("/:id", h.Gallery.Delete)
		gallery.POST("/bulk-delete", h.Gallery.BulkDelete)
	}
}
