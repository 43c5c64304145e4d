package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/middleware"
	"github.com/verebtamas/munkaido-hub/internal/model/dto"
	"github.com/verebtamas/munkaido-hub/internal/service"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
	"github.com/verebtamas/munkaido-hub/pkg/response"
)

// UpsertWorkLog creates or overwrites the entry for one date
// POST /v1/work-logs
func UpsertWorkLog(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	var req dto.UpsertWorkLogRequest
	if err := c.BindJSON(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.WorkLog().Upsert(ctx, userID, req)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}

// ListWorkLogs lists entries newest first
// GET /v1/work-logs?limit=&offset=
func ListWorkLogs(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	items, total, err := service.WorkLog().List(ctx, userID, limit, offset)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.SuccessWithMeta(ctx, c, items, map[string]interface{}{
		"total": total,
	})
}

// ExportWorkLogs downloads every entry as CSV
// GET /v1/work-logs/export
func ExportWorkLogs(ctx context.Context, c *app.RequestContext) {
	userID, ok := middleware.GetUserID(ctx, c)
	if !ok {
		response.Error(ctx, c, errors.Unauthorized)
		return
	}

	body, filename, err := service.WorkLog().Export(ctx, userID)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/csv; charset=utf-8", body)
}
