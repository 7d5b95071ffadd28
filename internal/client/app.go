package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-collab-client/internal/config"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/service"
	"github.com/MKhiriev/go-collab-client/models"
)

// UI is the interactive front end started once the session is restored.
type UI interface {
	Run(ctx context.Context, session models.Session) error
}

type App struct {
	services    *service.ClientServices
	ui          UI
	bootTimeout time.Duration
	logger      *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, appCfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services:    services,
		ui:          ui,
		bootTimeout: appCfg.BootTimeout,
		logger:      logger,
	}, nil
}

// Run restores the stored session and hands control to the UI. Boot is bounded
// by the configured timeout; an interrupted boot leaves the session invalid
// and the UI asks the user to sign in.
func (a *App) Run(ctx context.Context) error {
	bootCtx, cancel := context.WithTimeout(ctx, a.bootTimeout)
	session := a.services.Session.Boot(bootCtx)
	cancel()

	a.logger.Info().
		Str("func", "App.Run").
		Str("state", session.State.String()).
		Msg("session restored")

	if err := a.ui.Run(ctx, session); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
