package user

import (
	"context"
	"fmt"
	"time"

	"bookmyservice/models"
	"bookmyservice/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 15 * time.Minute

// VerifyEmail marks the account's email verified when the code matches.
func (s *DefaultUserService) VerifyEmail(ctx context.Context, email, code string) error {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("VerifyEmail: failed to fetch user", zap.Error(err))
		return fmt.Errorf("verification failed, please try again")
	}
	if rec == nil {
		return fmt.Errorf("Invalid email or verification code")
	}
	if rec.EmailVerified {
		return fmt.Errorf("Email is already verified")
	}

	codeClient := utils.GetCodeCacheClient()
	stored, err := codeClient.Get(ctx, "verify:"+email).Result()
	if err != nil && err != redis.Nil {
		utils.GetLogger().Error("VerifyEmail: code lookup failed", zap.Error(err))
		return fmt.Errorf("verification failed, please try again")
	}
	if err == redis.Nil || stored != code {
		return fmt.Errorf("Invalid email or verification code")
	}

	if err := s.Repo.UpdateFields(rec.ID, bson.M{"email_verified": true}); err != nil {
		utils.GetLogger().Error("VerifyEmail: failed to update user", zap.Error(err))
		return fmt.Errorf("verification failed, please try again")
	}
	_ = codeClient.Del(ctx, "verify:"+email).Err()
	return nil
}

// RequestPasswordReset queues a reset code to the account's email.
func (s *DefaultUserService) RequestPasswordReset(ctx context.Context, username string) error {
	logger := utils.GetLogger()

	rec, err := s.Repo.GetByUsername(username)
	if err != nil {
		logger.Error("RequestPasswordReset: failed to fetch user", zap.Error(err))
		return fmt.Errorf("password reset failed, please try again")
	}
	if rec == nil {
		return fmt.Errorf("Username not found")
	}

	code, err := utils.GenerateVerificationCode(verifyCodeSize)
	if err != nil {
		return fmt.Errorf("password reset failed, please try again")
	}
	// The code itself keys the entry so ChangePassword can resolve the
	// account from the code alone.
	if err := utils.GetCodeCacheClient().Set(ctx, "reset:"+code, rec.ID, resetCodeTTL).Err(); err != nil {
		logger.Error("RequestPasswordReset: failed to store code", zap.Error(err))
		return fmt.Errorf("password reset failed, please try again")
	}

	if err := s.Notifier.Notify(ctx, models.EmailPasswordReset, rec.Email, map[string]string{
		"username": rec.Username,
		"code":     code,
	}); err != nil {
		logger.Warn("RequestPasswordReset: failed to queue email",
			zap.String("userID", rec.ID), zap.Error(err))
	}
	return nil
}

// ChangePassword sets a new password when the reset code matches.
func (s *DefaultUserService) ChangePassword(ctx context.Context, code, newPassword string) error {
	logger := utils.GetLogger()

	if !IsStrongPassword(newPassword) {
		return fmt.Errorf("Password is not strong enough")
	}

	codeClient := utils.GetCodeCacheClient()
	userID, err := codeClient.Get(ctx, "reset:"+code).Result()
	if err == redis.Nil {
		return fmt.Errorf("Invalid verification code")
	}
	if err != nil {
		logger.Error("ChangePassword: code lookup failed", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}

	rec, err := s.Repo.GetByID(userID)
	if err != nil || rec == nil {
		logger.Error("ChangePassword: failed to fetch user", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("ChangePassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}
	if err := s.Repo.UpdateFields(rec.ID, bson.M{"password_hash": string(hashed)}); err != nil {
		logger.Error("ChangePassword: failed to update user", zap.Error(err))
		return fmt.Errorf("password change failed, please try again")
	}
	_ = codeClient.Del(ctx, "reset:"+code).Err()

	if err := s.Notifier.Notify(ctx, models.EmailPasswordChanged, rec.Email, map[string]string{
		"username": rec.Username,
	}); err != nil {
		logger.Warn("ChangePassword: failed to queue email",
			zap.String("userID", rec.ID), zap.Error(err))
	}
	return nil
}
