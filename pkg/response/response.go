package response

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/i18n"
	"github.com/verebtamas/munkaido-hub/pkg/errors"
)

// ErrorResponse is the unified error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Details map[string]interface{} `json:"details,omitempty"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
}

// SuccessResponse is the unified success envelope.
type SuccessResponse struct {
	Data interface{}            `json:"data"`
	Meta map[string]interface{} `json:"meta,omitempty"`
}

func errorToHTTPStatus(err error) int {
	def, ok := err.(errors.Definition)
	if !ok {
		return http.StatusInternalServerError
	}

	switch def.Code {
	case "TOO_MANY_REQUESTS":
		return http.StatusTooManyRequests // 429
	case "INVALID_CREDENTIALS", "UNAUTHORIZED", "REFRESH_TOKEN_INVALID":
		return http.StatusUnauthorized // 401
	case "VALIDATION_FAILED", "INVALID_REQUEST", "INVALID_DATE",
		"INVALID_CLOCK", "INVALID_MONTH", "INVALID_USER_ID",
		"EMAIL_ALREADY_REGISTERED", "EXPORT_EMPTY":
		return http.StatusBadRequest // 400
	case "WORKLOG_NOT_FOUND", "USER_NOT_FOUND":
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

// Error writes the error envelope with the mapped status code.
func Error(ctx context.Context, c *app.RequestContext, err error) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = i18n.ErrorMessage(ctx, def.Code, def.Message)
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(ctx context.Context, c *app.RequestContext, err error, details map[string]interface{}) {
	statusCode := errorToHTTPStatus(err)

	var code, message string
	if def, ok := err.(errors.Definition); ok {
		code = def.Code
		message = i18n.ErrorMessage(ctx, def.Code, def.Message)
	} else {
		code = "INTERNAL_ERROR"
		message = err.Error()
	}

	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func Success(ctx context.Context, c *app.RequestContext, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
	})
}

func SuccessWithMeta(ctx context.Context, c *app.RequestContext, data interface{}, meta map[string]interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func BindError(ctx context.Context, c *app.RequestContext, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// NoContent is used by logout and other bodyless operations.
func NoContent(ctx context.Context, c *app.RequestContext) {
	c.Status(http.StatusNoContent)
}
