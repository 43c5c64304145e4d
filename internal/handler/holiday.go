package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/service"
	"github.com/verebtamas/munkaido-hub/pkg/response"
)

// ListHolidays returns the Hungarian public holidays of one year
// GET /v1/holidays?year=YYYY
func ListHolidays(ctx context.Context, c *app.RequestContext) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		year = time.Now().Year()
	}

	result, err := service.Holiday().ListYear(ctx, year)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
