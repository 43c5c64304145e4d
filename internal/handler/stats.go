package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/middleware"
	"github.com/verebtamas/munkaido-hub/internal/service"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/response"
)

// GetStatistics returns monthly aggregates over the trailing window
// GET /v1/statistics
func GetStatistics(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	result, err := service.Stats().Trailing(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
