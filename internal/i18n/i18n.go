package i18n

import (
	"context"
	"embed"
	"encoding/json"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/verebtamas/munkaido-hub/pkg/logger"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle        *i18n.Bundle
	defaultLocale = "hu"
)

type ctxKey struct{}

// Init loads the embedded locale files and sets the default locale.
func Init(defLocale string) {
	if defLocale != "" {
		defaultLocale = defLocale
	}

	bundle = i18n.NewBundle(language.Hungarian)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		logger.Logger.Fatal("Failed to read locales dir", zap.Error(err))
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			logger.Logger.Fatal("Failed to read locale file", zap.String("file", e.Name()), zap.Error(err))
		}
		bundle.MustParseMessageFileBytes(data, e.Name())
	}

	logger.Logger.Info("Locales loaded",
		zap.Int("files", len(entries)),
		zap.String("default", defaultLocale),
	)
}

// WithLocale returns a context carrying the given locale ("hu", "en").
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

// LocaleFromContext returns the locale in ctx, or the default.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return v
	}
	return defaultLocale
}

// T translates a message ID using the locale from the context. Falls
// back to the message ID itself when no translation exists.
func T(ctx context.Context, messageID string, templateData ...map[string]any) string {
	if bundle == nil {
		return messageID
	}

	lang := LocaleFromContext(ctx)
	l := i18n.NewLocalizer(bundle, lang)

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(templateData) > 0 && templateData[0] != nil {
		cfg.TemplateData = templateData[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}

// ErrorMessage translates a business error code, falling back to the
// given default text.
func ErrorMessage(ctx context.Context, code, fallback string) string {
	msg := T(ctx, "errors."+code)
	if msg == "errors."+code {
		return fallback
	}
	return msg
}
