package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking  *api.BookingHandler
	Blackout *api.BlackoutHandler
	Ledger   *api.LedgerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	read := middleware.RequirePermission(usecase.PermissionBookingsRead)
	write := middleware.RequirePermission(usecase.PermissionBookingsWrite)
	pay := middleware.RequirePermission(usecase.PermissionPaymentsWrite)
	blackouts := middleware.RequirePermission(usecase.PermissionBlackoutsWrite)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		venues := apiGroup.Group("/venues/:venueId")
		addRoutes(venues, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{write}},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List, Mw: []gin.HandlerFunc{read}},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.Availability, Mw: []gin.HandlerFunc{read}},
			{Method: http.MethodGet, Path: "/blackout-conflicts", Handler: h.Booking.BlackoutConflicts, Mw: []gin.HandlerFunc{read}},
			{Method: http.MethodGet, Path: "/blackouts", Handler: h.Blackout.List, Mw: []gin.HandlerFunc{read}},
			{Method: http.MethodPost, Path: "/blackouts", Handler: h.Blackout.Create, Mw: []gin.HandlerFunc{blackouts}},
		})

		addRoutes(apiGroup.Group("/blackouts"), []route{
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Blackout.Update, Mw: []gin.HandlerFunc{blackouts}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Blackout.Delete, Mw: []gin.HandlerFunc{blackouts}},
		})

		addRoutes(apiGroup.Group("/bookings"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get, Mw: []gin.HandlerFunc{read}},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.Update, Mw: []gin.HandlerFunc{write}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete, Mw: []gin.HandlerFunc{write}},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{write}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{write}},
			{Method: http.MethodPost, Path: "/:id/restore", Handler: h.Booking.Restore, Mw: []gin.HandlerFunc{write}},
			{Method: http.MethodPut, Path: "/:id/payment", Handler: h.Booking.UpdatePayment, Mw: []gin.HandlerFunc{pay}},
			{Method: http.MethodGet, Path: "/:id/transactions", Handler: h.Ledger.List, Mw: []gin.HandlerFunc{read}},
			{Method: http.MethodPost, Path: "/:id/transactions", Handler: h.Ledger.Append, Mw: []gin.HandlerFunc{pay}},
		})

		addRoutes(apiGroup.Group("/transactions"), []route{
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Ledger.Update, Mw: []gin.HandlerFunc{pay}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
