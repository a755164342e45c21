// Package activity publishes what users did on the screens (logins,
// registrations, reset codes) and logs it from a bus subscriber.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/lessonhub/internal/pubsub"
)

// Login methods.
const (
	MethodPassword = "password"
	MethodFacebook = "facebook"
)

// LoginEvent is published after a login screen success.
type LoginEvent struct {
	Email   string    `json:"email"`
	Method  string    `json:"method"`
	Subject string    `json:"subject,omitempty"`
	At      time.Time `json:"at"`
}

// RegistrationEvent is published after a registration screen success.
type RegistrationEvent struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

// ResetCodeEvent is published when a reset code is shown. The code itself is
// left out.
type ResetCodeEvent struct {
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

var (
	LoginSucceeded  = pubsub.NewEvent[LoginEvent]("activity.login")
	Registered      = pubsub.NewEvent[RegistrationEvent]("activity.registered")
	ResetCodeIssued = pubsub.NewEvent[ResetCodeEvent]("activity.reset_code")
)

// Recorder publishes activity events. A nil Recorder or one without a
// publisher drops everything, and publish failures never reach the caller.
type Recorder struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewRecorder creates a Recorder publishing on pub.
func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub, now: time.Now}
}

func (r *Recorder) Login(ctx context.Context, email, method, subject string) {
	if r == nil || r.pub == nil {
		return
	}
	ev := LoginEvent{Email: email, Method: method, Subject: subject, At: r.now().UTC()}
	r.report(LoginSucceeded.Topic(), LoginSucceeded.Publish(ctx, r.pub, email, ev))
}

func (r *Recorder) Registration(ctx context.Context, name, email string) {
	if r == nil || r.pub == nil {
		return
	}
	ev := RegistrationEvent{Name: name, Email: email, At: r.now().UTC()}
	r.report(Registered.Topic(), Registered.Publish(ctx, r.pub, email, ev))
}

func (r *Recorder) ResetCode(ctx context.Context, email string) {
	if r == nil || r.pub == nil {
		return
	}
	ev := ResetCodeEvent{Email: email, At: r.now().UTC()}
	r.report(ResetCodeIssued.Topic(), ResetCodeIssued.Publish(ctx, r.pub, email, ev))
}

func (r *Recorder) report(topic string, err error) {
	if err != nil {
		slog.Warn("Failed to publish activity event", "topic", topic, "error", err)
	}
}
