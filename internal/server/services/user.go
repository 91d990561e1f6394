// Package services contains server-side business logic. This file implements
// UserService, which handles registration, credential checks, and issuing and
// verifying JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint a token
// - VerifyToken: resolve a token back to its user
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	logger                      logging.Logger
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		logger:                      l.With("module", "user_service"),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BCryptCost,
	}
}

// Register creates a new user with a salted hash of password. A taken
// username yields common.ErrorConflict; the stored hash is never returned
// to callers above this layer.
func (s *UserService) Register(ctx context.Context, username string, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "username", username, "error", err.Error())
		return nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		s.logger.Error(ctx, "failed to create user", "username", username, "error", err.Error())
		return nil, common.ErrorInternal
	}

	return user, nil
}

// Login verifies the credentials and, on success, returns a signed token
// encoding the username. An unknown username and a wrong password are
// deliberately indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username string, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "failed to look up user", "username", username, "error", err.Error())
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.UserName, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "failed to sign token", "username", username, "error", err.Error())
		return "", common.ErrorInternal
	}

	return token, nil
}

// VerifyToken parses and verifies an access token and resolves the encoded
// username to a User. Malformed, expired, or unresolvable tokens all yield
// common.ErrorUnauthorized.
func (s *UserService) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	username, err := auth.GetUserNameFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "failed to resolve token subject", "username", username, "error", err.Error())
		return nil, common.ErrorInternal
	}

	return user, nil
}
