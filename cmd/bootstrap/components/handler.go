package components

import (
	"sneakerdrop/internal/handler"
	"sneakerdrop/internal/handler/api"
	"sneakerdrop/internal/handler/middleware"
	"sneakerdrop/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDropHandler,
		api.NewReservationHandler,
		NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(cfg.JWT)
}
