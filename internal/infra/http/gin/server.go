package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"venuedesk/internal/infra/config"
	"venuedesk/internal/infra/obs"
)

type AuthHTTP interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type ReservationHTTP interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Check(c *gin.Context)
}

type BorrowingHTTP interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Check(c *gin.Context)
	AvailableItems(c *gin.Context)
}

type CatalogHTTP interface {
	Venues(c *gin.Context)
	Venue(c *gin.Context)
	Items(c *gin.Context)
	Staff(c *gin.Context)
}

type Handlers struct {
	Auth           AuthHTTP
	Reservations   ReservationHTTP
	Borrowings     BorrowingHTTP
	Catalog        CatalogHTTP
	AuthMiddleware gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))
	if h.AuthMiddleware != nil {
		router.Use(h.AuthMiddleware)
	}

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Auth != nil {
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
	}
	if h.Reservations != nil {
		api.GET("/reservations", h.Reservations.List)
		api.POST("/reservations", h.Reservations.Create)
		api.POST("/reservations/check", h.Reservations.Check)
		api.GET("/reservations/:id", h.Reservations.Get)
		api.PATCH("/reservations/:id", h.Reservations.Update)
		api.DELETE("/reservations/:id", h.Reservations.Delete)
	}
	if h.Borrowings != nil {
		api.GET("/borrowings", h.Borrowings.List)
		api.POST("/borrowings", h.Borrowings.Create)
		api.POST("/borrowings/check", h.Borrowings.Check)
		api.GET("/borrowings/:id", h.Borrowings.Get)
		api.PATCH("/borrowings/:id", h.Borrowings.Update)
		api.DELETE("/borrowings/:id", h.Borrowings.Delete)
		api.GET("/items/available", h.Borrowings.AvailableItems)
	}
	if h.Catalog != nil {
		api.GET("/venues", h.Catalog.Venues)
		api.GET("/venues/:id", h.Catalog.Venue)
		api.GET("/items", h.Catalog.Items)
		api.GET("/staff", h.Catalog.Staff)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
