// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface on top of Bubble Tea.
//
// The interface runs in two phases: [TUI.LoginFlow] opens a session through
// the menu, login and register pages, then [TUI.MainLoop] shows the inventory
// of that session until the user logs out or quits.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// ErrUserQuit is returned by LoginFlow when the user leaves before logging in.
var ErrUserQuit = errors.New("user quit")

// Page names registered in the login flow router.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

type TUI struct {
	services  *service.Services
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil || services.ProductService == nil {
		return nil, errors.New("tui: services are not initialized")
	}

	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow runs the menu/login/register pages until a session is opened.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	ctx = t.logger.WithContext(ctx)

	root := newLoginFlowModel(ctx, t.services.AuthService, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || !result.session.Valid() {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Str("session_id", result.session.ID).Int64("user_id", result.session.UserID).Msg("login flow finished")
	return result.session, nil
}

// MainLoop shows the inventory of session. It reports logout=true when the
// user asked to log out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	ctx = t.logger.WithSession(session).WithContext(ctx)

	model := newMainLoopModel(ctx, t.services.ProductService, session)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func newLoginFlowModel(ctx context.Context, auth service.AuthService, buildInfo models.AppBuildInfo) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
	}

	return NewRootModel(pages, pageMenu, buildInfo)
}
