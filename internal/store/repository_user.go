package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the generated
// UserID filled in.
//
// Error handling:
//   - unique violation on username → [ErrLoginAlreadyExists].
//   - any other failure → [*StorageError].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.createUser(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, storageError("create user", ErrBuildingSQLQuery, err)
	}

	id, err := r.db.insertReturningID(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("error inserting user")

		switch r.db.classify(err) {
		case ClassUniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, storageError("create user", ErrExecutingStatement, err)
		}
	}

	user.UserID = id
	user.Password = ""
	return user, nil
}

// FindUserByLogin retrieves the user whose username equals login exactly.
//
// Error handling:
//   - no row → [ErrNoUserWasFound].
//   - any other failure → [*StorageError].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries.findUserByLogin(login)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Msg("error building query")
		return models.User{}, storageError("find user", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&foundUser.UserID, &foundUser.Login, &foundUser.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", "*userRepository.FindUserByLogin").Str("login", login).Msg("user not found")
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByLogin").Str("login", login).Msg("error scanning user")
		return models.User{}, storageError("find user", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
