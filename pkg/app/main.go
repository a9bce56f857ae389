package app

import (
	"github.com/ghuser/fridgekeeper/pkg/cache"
	"github.com/ghuser/fridgekeeper/pkg/config"
	"github.com/ghuser/fridgekeeper/pkg/events"
	"github.com/ghuser/fridgekeeper/pkg/logger"
	"github.com/ghuser/fridgekeeper/pkg/telemetry"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to each service's route and subscriber registration during startup.
//
// app.Logger injects trace_id, span_id and request_id when given a context:
//
//	app.Logger.InfoContext(ctx, "fridge: item added", "item_uuid", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Config   *config.Config
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient      // nil when REDIS_URL is empty
	Metrics  *telemetry.FridgeMetrics // nil disables fridge metrics
}
