package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/middleware"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/service"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/response"
)

// Register creates an account
// POST /v1/auth/register
func Register(ctx context.Context, c *app.RequestContext) {
	var req dto.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Register(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// Login signs in with email and password
// POST /v1/auth/login
func Login(ctx context.Context, c *app.RequestContext) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().Login(ctx, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// RefreshToken rotates the token pair
// POST /v1/auth/token/refresh
func RefreshToken(ctx context.Context, c *app.RequestContext) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Auth().RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// Logout invalidates the stored refresh token
// POST /v1/auth/logout
func Logout(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	if err := service.Auth().Logout(ctx, userID); err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.NoContent(ctx, c)
}
