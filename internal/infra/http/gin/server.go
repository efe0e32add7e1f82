package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"staycal/internal/infra/config"
	"staycal/internal/infra/obs"
)

type CalendarHTTP interface {
	Month(c *gin.Context)
	List(c *gin.Context)
}

type ViewHTTP interface {
	Get(c *gin.Context)
	Filter(c *gin.Context)
	Navigate(c *gin.Context)
	Today(c *gin.Context)
	Mode(c *gin.Context)
	Refresh(c *gin.Context)
}

type ReservationHTTP interface {
	Get(c *gin.Context)
	Tooltip(c *gin.Context)
	HideTooltip(c *gin.Context)
}

type PropertyHTTP interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Register(c *gin.Context)
}

type Handlers struct {
	Calendar    CalendarHTTP
	View        ViewHTTP
	Reservation ReservationHTTP
	Property    PropertyHTTP
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
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Calendar != nil {
		api.GET("/calendar", h.Calendar.Month)
		api.GET("/reservations", h.Calendar.List)
	}
	if h.Reservation != nil {
		api.GET("/reservations/:id", h.Reservation.Get)
		api.GET("/reservations/:id/tooltip", h.Reservation.Tooltip)
		api.DELETE("/tooltip", h.Reservation.HideTooltip)
	}
	if h.View != nil {
		viewGroup := api.Group("/view")
		viewGroup.GET("", h.View.Get)
		viewGroup.POST("/filter", h.View.Filter)
		viewGroup.POST("/navigate", h.View.Navigate)
		viewGroup.POST("/today", h.View.Today)
		viewGroup.POST("/mode", h.View.Mode)
		viewGroup.POST("/refresh", h.View.Refresh)
	}
	if h.Property != nil {
		api.GET("/properties", h.Property.List)
		api.GET("/properties/:id", h.Property.Get)
		api.POST("/properties", h.Property.Register)
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
