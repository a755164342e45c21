package screens

import "github.com/nfrund/lessonhub/internal/navigator"

// AlertKind picks the styling for an alert. It does not change behavior.
type AlertKind string

const (
	AlertSuccess AlertKind = "success"
	AlertError   AlertKind = "error"
	AlertInfo    AlertKind = "info"
)

// Alert is a blocking notice with a title and an optional message.
type Alert struct {
	Kind    AlertKind
	Title   string
	Message string
}

// Alerter shows alerts to the user.
type Alerter interface {
	Alert(a Alert)
}

// Navigator is the part of the navigation host a screen needs.
type Navigator interface {
	Navigate(r navigator.Route) error
}

// AlertLog is an Alerter that keeps alerts in order. The HTTP layer drains it
// into flash messages after a screen action runs.
type AlertLog struct {
	alerts []Alert
}

func (l *AlertLog) Alert(a Alert) { l.alerts = append(l.alerts, a) }

// Alerts returns everything raised so far.
func (l *AlertLog) Alerts() []Alert { return l.alerts }

// Last returns the most recent alert, if any.
func (l *AlertLog) Last() (Alert, bool) {
	if len(l.alerts) == 0 {
		return Alert{}, false
	}
	return l.alerts[len(l.alerts)-1], true
}
