package services

import (
	"github.com/ghuser/fridgekeeper/pkg/app"
	"github.com/ghuser/fridgekeeper/pkg/config"
)

// Services is the application-layer service container for the fridge context.
// One container is shared by the HTTP API and the event subscriber so both
// act on the same inventory.
type Services struct {
	Fridge *Manager
	// RestockThreshold is the default threshold for restock queries.
	RestockThreshold float64
	IsProduction     bool
}

// New wires the fridge services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	var rec Recorder
	if a.Metrics != nil {
		rec = a.Metrics
	}

	svcs := &Services{
		Fridge: NewManager(a.Logger.With("component", "fridge"), rec),
	}
	if a.Config != nil {
		svcs.RestockThreshold = a.Config.RestockThreshold
		svcs.IsProduction = a.Config.Environment == config.EnvProduction
	}
	return svcs
}
