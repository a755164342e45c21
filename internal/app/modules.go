package app

import (
	"log/slog"

	"github.com/nfrund/lessonhub/internal/domain"
	"github.com/nfrund/lessonhub/internal/module"
	"github.com/nfrund/lessonhub/internal/modules/activitylog"
	"github.com/nfrund/lessonhub/internal/modules/screens"
	"github.com/nfrund/lessonhub/internal/pubsub"
)

// Dependencies holds the core services the application's modules are built from.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Logger     *slog.Logger
	// Provider and Identity are nil when Facebook login is not configured.
	Provider      domain.OAuthProvider
	Identity      domain.IdentityBackend
	RatePerMinute int
}

// NewModules returns every active module. Modules are registered in order,
// so providers of shared services come first.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		activitylog.New(activitylog.Dependencies{
			Publisher:  deps.Publisher,
			Subscriber: deps.Subscriber,
			Logger:     deps.Logger,
		}),
		screens.New(screens.Dependencies{
			Provider:      deps.Provider,
			Identity:      deps.Identity,
			RatePerMinute: deps.RatePerMinute,
		}),
	}
}
