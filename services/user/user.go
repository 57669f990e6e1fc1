package user

import (
	"context"

	userRepo "bookmyservice/database/repository/user"
	"bookmyservice/models"
	"bookmyservice/services/notification"
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	Token string      `json:"accessToken"`
	User  models.User `json:"user"`
}

// RegistrationInput is the caller-supplied registration payload.
type RegistrationInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=admin provider consumer"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Location    string `json:"location" binding:"required"`
}

// UserService manages accounts and their authentication lifecycle.
type UserService interface {
	// Register creates an account, issues a token and queues the email
	// verification code.
	Register(ctx context.Context, in RegistrationInput) (*AuthResponse, error)
	// Authenticate verifies credentials by username or email and issues
	// a fresh token, revoking any previous one.
	Authenticate(ctx context.Context, usernameOrEmail, password string) (*AuthResponse, error)
	// RevokeToken invalidates the account's current token.
	RevokeToken(ctx context.Context, userID string) error
	// VerifyEmail marks the account's email verified when the code matches.
	VerifyEmail(ctx context.Context, email, code string) error
	// RequestPasswordReset queues a reset code to the account's email.
	RequestPasswordReset(ctx context.Context, username string) error
	// ChangePassword sets a new password when the reset code matches.
	ChangePassword(ctx context.Context, code, newPassword string) error

	// GetByID retrieves an account by ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetAll retrieves all accounts.
	GetAll(ctx context.Context) ([]models.User, error)
	// Update modifies mutable profile fields of an account.
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	// Delete removes an account.
	Delete(ctx context.Context, id string) error
	// SetProfilePicture records the stored picture reference on the account.
	SetProfilePicture(ctx context.Context, id, pictureRef string) error
}

// DefaultUserService is the production user service.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Notifier notification.NotificationService
}
