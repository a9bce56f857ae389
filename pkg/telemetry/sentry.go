package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/fridgekeeper/pkg/config"
)

const sentryFlushTimeout = 2 * time.Second

// ignoredErrors are input faults reported back to the caller, not crashes.
// Matched by sentry as regular expressions against the error message.
var ignoredErrors = []string{
	"invalid fill factor",
}

// SetupSentry initializes crash reporting. Without SENTRY_DSN it does nothing
// and CaptureError stays a no-op.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          releaseName(cfg),
		ServerName:       cfg.ServiceName,
		TracesSampleRate: 0.2,
		AttachStacktrace: true,
		IgnoreErrors:     ignoredErrors,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

func releaseName(cfg *config.Config) string {
	return cfg.ServiceName + "@" + cfg.ServiceVersion
}

// CaptureError reports err with the given tags, e.g. the event topic that
// failed. Nil errors are ignored.
func CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		sentry.CaptureException(err)
	})
}

// SentryFlush drains buffered reports before exit.
func SentryFlush() {
	sentry.Flush(sentryFlushTimeout)
}

// SentryMiddleware reports handler panics and re-panics so logger.Recovery
// still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{Repanic: true, WaitForDelivery: false}).Handle
}
