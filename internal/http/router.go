package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/config"
	h "github.com/hasnain-sayyid/CargoVan-Connect/internal/http/handlers"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/http/middleware"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/repositories"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/services"
)

// NewRouter wires repositories, services and handlers around the injected DB
// handle and mounts all routes.
func NewRouter(env config.Env, db *sql.DB) *gin.Engine {
	bookingRepo := repositories.BookingRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	vanRepo := repositories.VanRepository{DB: db}

	bookingService := services.BookingService{Bookings: bookingRepo}
	receiptService := services.ReceiptService{Booking: bookingService}

	bookings := h.NewBookingHandler(bookingService, receiptService)
	auth := h.NewAuthHandler(userRepo, []byte(env.JWTSecret))
	users := h.NewUserHandler(userRepo)
	vans := h.NewVanHandler(vanRepo)
	system := h.NewSystemHandler(db)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins), middleware.AuthOptional([]byte(env.JWTSecret)))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/health", system.Health)
	r.GET("/db-check", system.DBCheck)

	bookingGroup := r.Group("/bookings")
	{
		bookingGroup.POST("", bookings.Create)
		bookingGroup.GET("", bookings.List)
		bookingGroup.PATCH("/:id/status", bookings.UpdateStatus)
		bookingGroup.GET("/:id/receipt", bookings.GetReceipt)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
	}

	userGroup := r.Group("/users")
	{
		userGroup.GET("", users.List)
		userGroup.GET("/:id", users.GetByID)
	}

	vanGroup := r.Group("/vans")
	{
		vanGroup.POST("", vans.Create)
		vanGroup.GET("", vans.List)
		vanGroup.GET("/:id", vans.GetByID)
	}

	return r
}
