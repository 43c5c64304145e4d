package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/verebtamas/munkaido-hub/internal/cache"
	"github.com/verebtamas/munkaido-hub/internal/model"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/repository"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/logger"
	"github.com/verebtamas/munkaido-hub/pkg/snowflake"
	"github.com/verebtamas/munkaido-hub/pkg/token"
	"github.com/verebtamas/munkaido-hub/utils"
)

var (
	authService *AuthService
	authOnce    sync.Once
)

func Auth() *AuthService {
	authOnce.Do(func() {
		authService = &AuthService{}
	})
	return authService
}

type AuthService struct{}

// Register creates an account and signs the user in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidateEmail(email) || len(req.Password) < 8 {
		return nil, errors.ValidationFailed
	}

	if _, err := repository.Users().GetByEmail(ctx, email); err == nil {
		return nil, errors.EmailAlreadyRegistered
	} else if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	publicID, err := snowflake.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	user := &model.User{
		PublicID:     publicID,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(req.FullName),
	}

	if err := repository.Users().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Logger.Info("New user registered",
		zap.Int64("public_id", publicID),
	)

	return s.issueTokens(ctx, user)
}

// Login verifies credentials. Wrong email and wrong password produce
// the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := repository.Users().GetByEmail(ctx, email)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.InvalidCredentials
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, errors.InvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates the token pair after checking the presented
// refresh token against Redis.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	userIDStr, err := token.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.RefreshTokenInvalid
	}

	if !cache.ValidateRefreshTokenExists(ctx, userIDStr, refreshToken) {
		return nil, errors.RefreshTokenInvalid
	}

	publicID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, errors.InvalidUserID
	}

	user, err := repository.Users().GetByPublicID(ctx, publicID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.UserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Logout drops the stored refresh token. The access token simply ages
// out.
func (s *AuthService) Logout(ctx context.Context, publicID string) error {
	if err := cache.DeleteRefreshToken(ctx, publicID); err != nil {
		logger.Logger.Warn("Failed to delete refresh token",
			zap.String("user_id", publicID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// GetProfile returns the authenticated user's profile.
func (s *AuthService) GetProfile(ctx context.Context, publicID string) (*dto.ProfileResponse, error) {
	user, err := s.lookupUser(ctx, publicID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		ID:       strconv.FormatInt(user.PublicID, 10),
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}

// lookupUser resolves a public ID string to the stored user.
func (s *AuthService) lookupUser(ctx context.Context, publicID string) (*model.User, error) {
	id, err := strconv.ParseInt(publicID, 10, 64)
	if err != nil {
		return nil, errors.InvalidUserID
	}

	user, err := repository.Users().GetByPublicID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, errors.UserNotFound
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User) (*dto.AuthResponse, error) {
	userIDStr := strconv.FormatInt(user.PublicID, 10)

	accessToken, refreshToken, expiresIn, err := token.GenerateTokenPair(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := cache.SetRefreshToken(ctx, userIDStr, refreshToken); err != nil {
		logger.Logger.Warn("Failed to store refresh token in Redis",
			zap.String("user_id", userIDStr),
			zap.Error(err),
		)
		// Token pair is already issued, do not fail the login.
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User: dto.AuthUserSnapshot{
			ID:       userIDStr,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}
