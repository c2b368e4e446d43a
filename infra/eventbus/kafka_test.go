//go:build kafka

package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/amirasaad/finsible/pkg/domain/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testcontainerskafka "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// setupKafkaBus starts a Kafka container and returns a bus connected to it.
func setupKafkaBus(tb testing.TB) *KafkaEventBus {
	tb.Helper()

	if !dockerIsReachable() {
		tb.Skip("docker is not reachable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	kafkaContainer, err := testcontainerskafka.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(tb, err)

	brokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(tb, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	bus, err := NewWithKafka(brokers, logger, KafkaEventBusConfig{GroupID: "finsible-test"})
	require.NoError(tb, err)

	tb.Cleanup(func() {
		_ = bus.Close()
		_ = kafkaContainer.Terminate(context.Background())
	})
	return bus
}

func dockerIsReachable() bool {
	host := os.Getenv("DOCKER_HOST")
	if strings.HasPrefix(host, "unix://") {
		return canDialUnix(strings.TrimPrefix(host, "unix://"))
	}
	if host != "" {
		return true
	}
	return canDialUnix("/var/run/docker.sock")
}

func canDialUnix(path string) bool {
	conn, err := net.DialTimeout("unix", path, 300*time.Millisecond)
	if err != nil {
		return false
	}
	_ = conn.Close()
	return true
}

func TestKafkaBusHandlerReceivesAccountCreated(t *testing.T) {
	bus := setupKafkaBus(t)
	acc := testAccount(t)

	received := make(chan *events.AccountCreated, 1)
	bus.Register(events.EventTypeAccountCreated, func(_ context.Context, e events.Event) error {
		ev, ok := e.(*events.AccountCreated)
		if !ok {
			return errors.New("unexpected event type")
		}
		received <- ev
		return nil
	})

	require.NoError(t, bus.Emit(context.Background(), events.NewAccountCreated(*acc.UserID, acc)))

	select {
	case ev := <-received:
		assert.Equal(t, acc.ID, ev.AccountID)
		assert.Equal(t, acc.Version, ev.Version)
	case <-time.After(15 * time.Second):
		t.Fatal("handler did not receive event in time")
	}
}

func TestKafkaBusFailedHandlerGoesToDLQ(t *testing.T) {
	bus := setupKafkaBus(t)
	acc := testAccount(t)

	bus.Register(events.EventTypeAccountDeleted, func(context.Context, events.Event) error {
		return errors.New("simulated failure")
	})

	require.NoError(t, bus.Emit(context.Background(), events.NewAccountDeleted(*acc.UserID, acc)))

	dlqReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     bus.brokers,
		Topic:       dlqTopicNameFor(bus.config.TopicPrefix, events.EventTypeAccountDeleted),
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     500 * time.Millisecond,
	})
	defer func() { _ = dlqReader.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	msg, err := dlqReader.FetchMessage(ctx)
	require.NoError(t, err)

	evt, eventType, err := decodeEnvelope(msg.Value)
	require.NoError(t, err)
	assert.Equal(t, events.EventTypeAccountDeleted, eventType)
	assert.Equal(t, acc.ID, evt.(*events.AccountDeleted).AccountID)
}
