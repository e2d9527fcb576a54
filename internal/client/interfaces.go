// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the part of the terminal interface the application drives.
type UI interface {
	// LoginFlow blocks until a session is opened or the user quits
	// (tui.ErrUserQuit).
	LoginFlow(ctx context.Context) (models.Session, error)
	// MainLoop blocks until the user logs out (true) or quits (false).
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
}
