package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/lessonhub/internal/pubsub"
)

// LogSubscriber writes every activity event to the structured log. User
// emails and names are only logged at debug level.
type LogSubscriber struct {
	subscriber pubsub.Subscriber
	logger     *slog.Logger
}

// NewLogSubscriber creates a subscriber; a nil logger uses slog.Default().
func NewLogSubscriber(sub pubsub.Subscriber, logger *slog.Logger) *LogSubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSubscriber{subscriber: sub, logger: logger}
}

// Start subscribes to all activity topics. Delivery runs until ctx is canceled.
func (s *LogSubscriber) Start(ctx context.Context) error {
	subs := map[string]pubsub.Handler{
		LoginSucceeded.Topic():  s.handleLogin,
		Registered.Topic():      s.handleRegistration,
		ResetCodeIssued.Topic(): s.handleResetCode,
	}
	for topic, handler := range subs {
		if err := s.subscriber.Subscribe(ctx, topic, handler); err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}
	s.logger.Info("Activity subscriber started")
	return nil
}

func (s *LogSubscriber) handleLogin(ctx context.Context, msg pubsub.Message) error {
	ev, err := LoginSucceeded.Decode(msg)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "User logged in", "method", ev.Method, "subject", ev.Subject, "at", ev.At)
	s.logger.DebugContext(ctx, "Login details", "email", ev.Email)
	return nil
}

func (s *LogSubscriber) handleRegistration(ctx context.Context, msg pubsub.Message) error {
	ev, err := Registered.Decode(msg)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "User registered", "at", ev.At)
	s.logger.DebugContext(ctx, "Registration details", "email", ev.Email, "name", ev.Name)
	return nil
}

func (s *LogSubscriber) handleResetCode(ctx context.Context, msg pubsub.Message) error {
	ev, err := ResetCodeIssued.Decode(msg)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "Reset code shown", "at", ev.At)
	s.logger.DebugContext(ctx, "Reset code details", "email", ev.Email)
	return nil
}
