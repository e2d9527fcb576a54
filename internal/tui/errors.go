// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
)

// errorKind decides how an error is presented to the user.
type errorKind int

const (
	errorKindInput errorKind = iota
	errorKindStorage
	errorKindOther
)

// describeError maps an error returned by the services to a headline and a
// message. Validation problems are shown as input hints, storage failures keep
// the engine message.
func describeError(err error) (errorKind, string, string) {
	var verr *validators.ValidationError
	var serr *store.StorageError

	switch {
	case err == nil:
		return errorKindOther, "", ""
	case errors.As(err, &verr):
		return errorKindInput, app.TitleInvalidInput, verr.Err.Error()
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return errorKindInput, app.TitleRegistrationFailed, app.MsgLoginAlreadyExists
	case errors.Is(err, service.ErrWrongPassword):
		return errorKindInput, app.TitleLoginFailed, app.MsgInvalidLoginPassword
	case errors.Is(err, service.ErrInvalidDataProvided):
		return errorKindInput, app.TitleInvalidInput, app.MsgPasswordNotAccepted
	case errors.Is(err, store.ErrProductNotFound):
		return errorKindStorage, app.TitleStorageError, app.MsgProductNotFound
	case errors.As(err, &serr):
		return errorKindStorage, app.TitleStorageError, serr.Error()
	default:
		return errorKindOther, app.TitleUnexpectedError, err.Error()
	}
}

// humanizeError returns the one-line form of describeError used on forms.
func humanizeError(err error) string {
	_, _, message := describeError(err)
	return message
}
