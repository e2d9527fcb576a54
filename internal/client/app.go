package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/tui"
)

var _ Client = (*App)(nil)

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("client: ui is nil")
	}

	return &App{ui: ui, logger: logger}, nil
}

// Run alternates between the login flow and the inventory screen until the
// user quits. Logging out starts a new login flow.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	for {
		session, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit before logging in")
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			a.logger.Info().Str("session_id", session.ID).Msg("user quit")
			return nil
		}

		a.logger.Info().Str("session_id", session.ID).Int64("user_id", session.UserID).Msg("user logged out")
	}
}
