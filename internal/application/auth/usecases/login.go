// Package usecases implements the token-issuing login flow.
package usecases

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"lerms/internal/domain/identity"
	apperrors "lerms/internal/shared/errors"
	"lerms/internal/shared/logger"
)

// TokenIssuer signs access tokens for resolved users.
type TokenIssuer interface {
	IssueToken(userID uint, email string) (string, int64, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the signed token and its expiry in unix seconds.
type LoginResult struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
}

// LoginUseCase verifies a password against the stored bcrypt hash and
// issues a JWT. Accounts without a hash cannot log in this way; they use
// the header-email path.
type LoginUseCase struct {
	userRepo identity.UserRepository
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo identity.UserRepository, issuer TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{userRepo: userRepo, issuer: issuer, logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up user", "error", err, "email", cmd.Email)
		return nil, apperrors.NewStorageError("get user", err)
	}

	// Same response for missing user and wrong password.
	if user == nil || user.PasswordHash() == nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash()), []byte(cmd.Password)); err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	if !user.IsActive() {
		return nil, apperrors.NewInactiveUserError(user.Email())
	}

	token, expiresAt, err := uc.issuer.IssueToken(user.ID(), user.Email())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", user.ID())
		return nil, apperrors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("user logged in", "user_id", user.ID(), "email", user.Email())
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID(),
		Email:     user.Email(),
	}, nil
}
