// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-stock-keeper terminal screens.
//
// Msg* constants are the human-readable texts shown to the user when an
// operation fails. Title* constants head the error overlay. Keeping them in
// one place ensures consistent wording throughout the UI.
package app

const (
	// TitleInvalidInput heads errors the user can fix by changing the input.
	TitleInvalidInput = "Check your input"

	// TitleLoginFailed heads a rejected login attempt.
	TitleLoginFailed = "Login failed"

	// TitleRegistrationFailed heads a rejected registration.
	TitleRegistrationFailed = "Registration failed"

	// TitleStorageError heads failures reported by the database engine.
	TitleStorageError = "Database error"

	// TitleUnexpectedError heads anything else.
	TitleUnexpectedError = "Error"
)

const (
	// MsgLoginAlreadyExists is shown when the chosen username is taken.
	MsgLoginAlreadyExists = "this username is already taken"

	// MsgInvalidLoginPassword is shown when the username/password pair does
	// not match a stored user.
	MsgInvalidLoginPassword = "wrong username or password"

	// MsgPasswordNotAccepted is shown when the password cannot be hashed,
	// e.g. it is longer than 72 bytes.
	MsgPasswordNotAccepted = "this password cannot be used, it must be at most 72 bytes"

	// MsgPasswordsDoNotMatch is shown when the password confirmation differs.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgProductNotFound is shown when the selected product was removed
	// before the operation reached the database.
	MsgProductNotFound = "the product no longer exists"

	// MsgNothingChanged follows every storage error: the failed statement
	// left the inventory as it was.
	MsgNothingChanged = "Nothing was changed."
)
