package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bookmyservice/models"
	"bookmyservice/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTTL       = 7 * 24 * time.Hour
	verifyCodeTTL  = 24 * time.Hour
	verifyCodeSize = 6
)

// Register creates an account, issues a token and queues the email
// verification code.
func (s *DefaultUserService) Register(ctx context.Context, in RegistrationInput) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if !IsValidUsername(in.Username) {
		return nil, fmt.Errorf("Username should only contain letters and numbers")
	}
	if !IsStrongPassword(in.Password) {
		return nil, fmt.Errorf("Password is not strong enough")
	}

	// Duplicate check joins per-field messages the way the caller expects.
	existing, err := s.Repo.FindDuplicate(in.Username, in.Email, in.PhoneNumber)
	if err != nil {
		logger.Error("Register: duplicate lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		var msgs []string
		if existing.Username == in.Username {
			msgs = append(msgs, "Username already exists")
		}
		if existing.Email == in.Email {
			msgs = append(msgs, "Email already exists")
		}
		if existing.PhoneNumber == in.PhoneNumber {
			msgs = append(msgs, "Phone number already exists")
		}
		return nil, fmt.Errorf("%s", strings.Join(msgs, ", "))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	rec := &models.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hashed),
		Role:         in.Role,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Location:     in.Location,
	}
	if err := s.Repo.Create(rec); err != nil {
		logger.Error("Register: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	if err := s.queueVerificationEmail(ctx, rec); err != nil {
		logger.Warn("Register: failed to queue verification email",
			zap.String("userID", rec.ID), zap.Error(err))
	}

	token, err := s.issueToken(ctx, rec)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: *rec}, nil
}

// queueVerificationEmail stores a short-lived code and queues the mail.
func (s *DefaultUserService) queueVerificationEmail(ctx context.Context, rec *models.User) error {
	code, err := utils.GenerateVerificationCode(verifyCodeSize)
	if err != nil {
		return err
	}
	codeKey := "verify:" + rec.Email
	if err := utils.GetCodeCacheClient().Set(ctx, codeKey, code, verifyCodeTTL).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}
	return s.Notifier.Notify(ctx, models.EmailVerification, rec.Email, map[string]string{
		"username": rec.Username,
		"code":     code,
	})
}

// issueToken signs a token for the account and caches its hash so the
// middleware can honor revocations.
func (s *DefaultUserService) issueToken(ctx context.Context, rec *models.User) (string, error) {
	token, err := utils.GenerateToken(rec, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("authentication failed, please try again")
	}
	cacheKey := utils.AuthCachePrefix + rec.ID
	if err := utils.GetAuthCacheClient().Set(ctx, cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
		return "", fmt.Errorf("authentication failed, please try again")
	}
	return token, nil
}
