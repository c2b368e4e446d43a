// Command kafka_smoketest publishes an account.created event through the
// Kafka event bus and waits for the bus to deliver it back, verifying a
// local broker end to end.
//
// Usage: BROKERS=localhost:9092 go run ./scripts/kafka_smoketest
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/amirasaad/finsible/infra/eventbus"
	"github.com/amirasaad/finsible/pkg/domain/account"
	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/google/uuid"
)

const deliveryTimeout = 30 * time.Second

// RunSmokeTest emits one event and returns once it has been consumed.
func RunSmokeTest(ctx context.Context, logger *slog.Logger) error {
	brokers := strings.TrimSpace(os.Getenv("BROKERS"))
	if brokers == "" {
		brokers = "localhost:9092"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = "finsible-smoketest-" + uuid.NewString()[:8]
	}

	bus, err := eventbus.NewWithKafka(strings.Split(brokers, ","), logger, eventbus.KafkaEventBusConfig{
		GroupID:     groupID,
		TopicPrefix: "finsible.smoketest",
	})
	if err != nil {
		return err
	}
	defer bus.Close() //nolint: errcheck

	owner := uuid.New()
	acc, err := account.New().
		WithUserID(owner).
		WithGroup(1, account.GroupCash).
		WithName("Smoke test", "", "").
		WithCurrency("INR").
		Build()
	if err != nil {
		return err
	}
	sent := events.NewAccountCreated(owner, acc)

	received := make(chan string, 1)
	bus.Register(events.EventTypeAccountCreated, func(_ context.Context, e events.Event) error {
		if ev, ok := e.(*events.AccountCreated); ok && ev.ID == sent.ID {
			select {
			case received <- ev.ID:
			default:
			}
		}
		return nil
	})

	if err := bus.Emit(ctx, sent); err != nil {
		return err
	}
	logger.Info("produced", "event_id", sent.ID)

	select {
	case id := <-received:
		logger.Info("consumed", "event_id", id)
		return nil
	case <-ctx.Done():
		return errors.New("event was not delivered before the deadline")
	}
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	if err := RunSmokeTest(ctx, logger); err != nil {
		logger.Error("kafka smoke test failed", "error", err)
		cancel()
		os.Exit(1)
	}
	logger.Info("kafka smoke test passed")
}
