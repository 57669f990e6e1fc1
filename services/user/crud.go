package user

import (
	"context"
	"fmt"

	"bookmyservice/models"
	"bookmyservice/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetByID retrieves an account by ID.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("GetByID: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user")
	}
	if rec == nil {
		return nil, fmt.Errorf("User not found")
	}
	return rec, nil
}

// GetAll retrieves all accounts.
func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("GetAll: failed to fetch users", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch users")
	}
	return users, nil
}

// updatableFields are the profile fields a caller may change directly.
// Password and role changes go through their dedicated flows.
var updatableFields = map[string]bool{
	"username":     true,
	"email":        true,
	"phone_number": true,
	"location":     true,
}

// Update modifies mutable profile fields of an account.
func (s *DefaultUserService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	set := bson.M{}
	for k, v := range fields {
		if updatableFields[k] {
			set[k] = v
		}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}
	if err := s.Repo.UpdateFields(id, set); err != nil {
		utils.GetLogger().Error("Update: failed to update user",
			zap.String("userID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update user")
	}
	return s.GetByID(ctx, id)
}

// Delete removes an account and revokes its token.
func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("Delete: failed to delete user",
			zap.String("userID", id), zap.Error(err))
		return fmt.Errorf("failed to delete user")
	}
	return s.RevokeToken(ctx, id)
}

// SetProfilePicture records the stored picture reference on the account.
func (s *DefaultUserService) SetProfilePicture(ctx context.Context, id, pictureRef string) error {
	if err := s.Repo.UpdateFields(id, bson.M{"profile_picture": pictureRef}); err != nil {
		utils.GetLogger().Error("SetProfilePicture: failed to update user",
			zap.String("userID", id), zap.Error(err))
		return fmt.Errorf("failed to update profile picture")
	}
	return nil
}
