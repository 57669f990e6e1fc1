package models

import "time"

// Roles a registered account can hold.
const (
	RoleAdmin    = "admin"
	RoleProvider = "provider"
	RoleConsumer = "consumer"
)

// User represents a platform account. Providers and consumers share the
// same record; the Role field decides what they may do.
type User struct {
	ID             string    `bson:"id" json:"id"`
	Username       string    `bson:"username" json:"username"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Role           string    `bson:"role" json:"role"`
	Email          string    `bson:"email" json:"email"`
	PhoneNumber    string    `bson:"phone_number" json:"phone_number"`
	Location       string    `bson:"location" json:"location"`
	EmailVerified  bool      `bson:"email_verified" json:"email_verified"`
	PhoneVerified  bool      `bson:"phone_verified" json:"phone_verified"`
	ProfilePicture string    `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	TokenHash      string    `bson:"token_hash,omitempty" json:"-"`
	LastLoginAt    time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// Identity is the caller identity handed down by the auth middleware.
// Services trust it as already verified and only reason about the role.
type Identity struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool { return id.Role == RoleAdmin }
