package middlewares

import (
	"gangosri-portal/internal/app/config"
	"gangosri-portal/internal/app/delivery/http/views"
	"gangosri-portal/internal/app/services/core/session"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	SessionService session.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Renderer:       renderer,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}
