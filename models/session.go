// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session identifies the authenticated user for the lifetime of one login.
// It is passed explicitly to every product operation instead of being kept
// in package state.
type Session struct {
	// ID correlates log entries produced during this login.
	ID string

	// UserID scopes every product query.
	UserID int64

	// Login is the username the session was opened for.
	Login string
}

// Valid reports whether the session belongs to a stored user.
func (s Session) Valid() bool {
	return s.UserID > 0
}
