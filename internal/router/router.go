package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/verebtamas/munkaido-hub/internal/handler"
	"github.com/verebtamas/munkaido-hub/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.LocaleMiddleware())

	v1 := h.Group("/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimitMiddleware())
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
		auth.POST("/token/refresh", handler.RefreshToken)
		auth.POST("/logout", middleware.AuthMiddleware(), handler.Logout)
	}

	users := v1.Group("/users")
	users.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		users.GET("/me", handler.GetUserProfile)
	}

	workLogs := v1.Group("/work-logs")
	workLogs.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		workLogs.POST("", handler.UpsertWorkLog)
		workLogs.GET("", handler.ListWorkLogs)
		workLogs.GET("/export", handler.ExportWorkLogs)
	}

	summaries := v1.Group("/summary")
	summaries.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		summaries.GET("/monthly", handler.GetMonthlySummary)
	}

	statistics := v1.Group("/statistics")
	statistics.Use(middleware.AuthMiddleware(), middleware.GeneralRateLimitMiddleware())
	{
		statistics.GET("", handler.GetStatistics)
	}

	// Reference data, no auth needed.
	v1.GET("/holidays", handler.ListHolidays)
}
