package service

import (
	"context"
	"fmt"

	"vastra/internal/auth"
	"vastra/internal/model"
	"vastra/internal/repository"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Login upserts the user row from the verified identity claims. First login
// creates the profile; later logins refresh the identity fields.
func (s *userService) Login(ctx context.Context, identity *auth.Identity) (*model.User, error) {
	user, err := s.userRepo.Upsert(ctx, model.UpsertUser{
		ID:              identity.UserID,
		Email:           identity.Email,
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		ProfileImageURL: identity.ProfileImageURL,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to upsert user on login")
		return nil, fmt.Errorf("failed to login user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")

	return user, nil
}

// Get retrieves a user profile.
func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.Get(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to get user")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		s.logger.Debug().Str("user_id", id).Msg("user not found")
		return nil, model.ErrUserNotFound
	}

	return user, nil
}

// UpdateProfile applies a sparse profile patch.
func (s *userService) UpdateProfile(ctx context.Context, id string, patch model.UpdateUser) (*model.User, error) {
	user, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user profile")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if user == nil {
		s.logger.Debug().Str("user_id", id).Msg("user not found for profile update")
		return nil, model.ErrUserNotFound
	}

	return user, nil
}
