package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/middleware"
	"github.com/verebtamas/munkaido-hub/internal/service"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/response"
)

// GetMonthlySummary returns per-day and month-total accounting
// GET /v1/summary/monthly?month=YYYY-MM
func GetMonthlySummary(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	month := c.Query("month")
	if month == "" {
		response.Error(ctx, c, errors.InvalidMonth)
		return
	}

	result, err := service.Summary().Monthly(ctx, userID, month)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
