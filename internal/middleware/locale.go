package middleware

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/verebtamas/munkaido-hub/internal/i18n"
)

// LocaleMiddleware picks the response language from ?lang or the
// Accept-Language header and carries it down in the context. Anything
// other than "en" falls back to the configured default.
func LocaleMiddleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		locale := c.Query("lang")
		if locale == "" {
			accept := string(c.GetHeader("Accept-Language"))
			if strings.HasPrefix(accept, "en") {
				locale = "en"
			} else if strings.HasPrefix(accept, "hu") {
				locale = "hu"
			}
		}

		if locale != "" {
			ctx = i18n.WithLocale(ctx, locale)
		}

		c.Next(ctx)
	}
}
