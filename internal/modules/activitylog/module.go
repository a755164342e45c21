// Package activitylog owns the activity Recorder and the subscriber that logs
// every activity event.
package activitylog

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/lessonhub/internal/activity"
	"github.com/nfrund/lessonhub/internal/module"
	"github.com/nfrund/lessonhub/internal/pubsub"
	"github.com/nfrund/lessonhub/internal/registry"
)

// RecorderKey is where the shared Recorder is registered.
const RecorderKey = registry.Key[*activity.Recorder]("activity.recorder")

// Dependencies holds the services required by the activity log module.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Logger     *slog.Logger
}

// Module publishes screen activity on the bus and logs it back.
type Module struct {
	module.BaseModule
	deps Dependencies
}

// New creates the activity log module.
func New(deps Dependencies) *Module {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Module{deps: deps}
}

func (m *Module) Name() string {
	return "activitylog"
}

// Register shares a Recorder so other modules can publish activity.
func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, RecorderKey, activity.NewRecorder(m.deps.Publisher))
	return nil
}

// Boot subscribes the log subscriber to every activity topic. Delivery stops
// when ctx is canceled.
func (m *Module) Boot(ctx context.Context, _ *echo.Group, _ *registry.Registry) error {
	if m.deps.Subscriber == nil {
		m.deps.Logger.Warn("Activity log disabled: no subscriber")
		return nil
	}
	return activity.NewLogSubscriber(m.deps.Subscriber, m.deps.Logger).Start(ctx)
}
