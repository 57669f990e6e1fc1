package user

import (
	"context"
	"fmt"
	"time"

	"bookmyservice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials by username or email and issues a
// fresh token, revoking any previous one.
func (s *DefaultUserService) Authenticate(ctx context.Context, usernameOrEmail, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	rec, err := s.Repo.GetByUsernameOrEmail(usernameOrEmail)
	if err != nil {
		logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("Invalid username or email")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("Invalid password")
	}

	// Overwriting the cached hash invalidates the previous token.
	token, err := s.issueToken(ctx, rec)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateFields(rec.ID, bson.M{"last_login_at": time.Now()}); err != nil {
		logger.Warn("Authenticate: failed to record login time",
			zap.String("userID", rec.ID), zap.Error(err))
	}

	return &AuthResponse{Token: token, User: *rec}, nil
}

// RevokeToken invalidates the account's current token.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	cacheKey := utils.AuthCachePrefix + userID
	if err := utils.GetAuthCacheClient().Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
