package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/middleware"
	"github.com/verebtamas/munkaido-hub/internal/service"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/response"
)

// GetUserProfile returns the signed-in user's profile
// GET /v1/users/me
func GetUserProfile(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	result, err := service.Auth().GetProfile(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
