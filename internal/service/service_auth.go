package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/crypto"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and a PasswordHasher for one-way hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator rejects empty credentials before any storage call.
	validator validators.Validator

	// hasher produces and checks the stored password hashes.
	hasher crypto.PasswordHasher

	// idGenerator produces session ids.
	idGenerator IDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewCredentialsValidator(),
		hasher:         crypto.NewBcryptHasher(cfg.PasswordHashCost),
		idGenerator:    utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both Login and Password are non-empty, hashes the
// password, and delegates persistence to the UserRepository.
//
// Returns nil on success or:
//   - ErrInvalidDataProvided (wrapping a *validators.ValidationError) if Login
//     or Password is empty, or the password is longer than bcrypt accepts.
//   - store.ErrLoginAlreadyExists if the login is taken.
//   - a *store.StorageError for any other storage failure.
func (a *authService) Register(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Error().Err(err).Str("login", user.Login).Msg("invalid user data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("password hashing failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registeredUser.UserID).Str("login", registeredUser.Login).Msg("user registered")
	return nil
}

// Validate checks a username/password pair.
//
// An unknown username or a wrong password yields (false, nil). Only storage
// failures and unreadable stored hashes are returned as errors.
func (a *authService) Validate(ctx context.Context, user models.User) (bool, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		return false, nil
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, user.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("login", user.Login).Msg("unknown login")
			return false, nil
		}
		log.Err(err).Str("login", user.Login).Msg("user search by login failed")
		return false, fmt.Errorf("user search by login failed: %w", err)
	}

	ok, err := a.hasher.Compare(foundUser.PasswordHash, user.Password)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("stored password hash is unreadable")
		return false, err
	}
	if !ok {
		log.Debug().Int64("user_id", foundUser.UserID).Msg("wrong password")
	}

	return ok, nil
}

// ResolveUserID maps a username to its stored id.
func (a *authService) ResolveUserID(ctx context.Context, login string) (int64, error) {
	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("login", login).Msg("user id resolution failed")
		return models.UnknownUserID, err
	}

	return foundUser.UserID, nil
}

// Login validates the credentials, resolves the user id and returns a new
// session for it.
//
// Returns ErrWrongPassword when the pair does not match a stored user.
func (a *authService) Login(ctx context.Context, user models.User) (models.Session, error) {
	log := logger.FromContext(ctx)

	ok, err := a.Validate(ctx, user)
	if err != nil {
		return models.Session{}, err
	}
	if !ok {
		log.Warn().Str("login", user.Login).Msg("login rejected")
		return models.Session{}, ErrWrongPassword
	}

	userID, err := a.ResolveUserID(ctx, user.Login)
	if err != nil {
		return models.Session{}, fmt.Errorf("resolve user id: %w", err)
	}

	session := models.Session{
		ID:     a.idGenerator.Generate(),
		UserID: userID,
		Login:  user.Login,
	}
	log.Info().Str("session_id", session.ID).Int64("user_id", userID).Msg("user logged in")

	return session, nil
}

// Registered reports whether err, as returned by AuthService.Register,
// means the account was created.
func Registered(err error) bool {
	return err == nil
}
