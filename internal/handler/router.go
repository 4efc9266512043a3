package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sneakerdrop/internal/handler/api"
	"sneakerdrop/internal/handler/middleware"
	"sneakerdrop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, dropHandler *api.DropHandler, reservationHandler *api.ReservationHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, dropHandler, reservationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, dropHandler *api.DropHandler, reservationHandler *api.ReservationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		drops := apiGroup.Group("/drops")
		{
			addRoutes(drops, []route{
				{Method: http.MethodGet, Path: "", Handler: dropHandler.ListDrops},
				{Method: http.MethodGet, Path: "/live", Handler: dropHandler.ListLiveDrops},
				{Method: http.MethodGet, Path: "/:id", Handler: dropHandler.GetDrop},
			})

			admin := drops.Group("")
			admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: dropHandler.CreateDrop},
				{Method: http.MethodPut, Path: "/:id", Handler: dropHandler.UpdateDrop},
				{Method: http.MethodDelete, Path: "/:id", Handler: dropHandler.DeactivateDrop},
			})

			reserve := drops.Group("")
			reserve.Use(authMiddleware.RequireAuth())
			addRoutes(reserve, []route{
				{Method: http.MethodPost, Path: "/:id/reserve", Handler: reservationHandler.CreateReservation},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.GetActiveReservations},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: reservationHandler.CompleteReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
			})
		}
	}
}

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
