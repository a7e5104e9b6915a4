package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/fire-spread-sim/internal/config"
	"github.com/couchcryptid/fire-spread-sim/internal/domain"
)

// Writer publishes completed simulation runs to a Kafka topic.
// It implements engine.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishRun serializes and publishes one run to the sink topic. The
// message key is the configuration fingerprint, so replays of the same
// configuration land on the same partition and dedupe downstream.
func (w *Writer) PublishRun(ctx context.Context, run *domain.SimulationRun) error {
	msg, err := serializeRun(run)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeRun marshals a SimulationRun into a Kafka message.
func serializeRun(run *domain.SimulationRun) (kafkago.Message, error) {
	data, err := json.Marshal(run)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize simulation run: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(run.ConfigFingerprint),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "run_id", Value: []byte(run.RunID)},
			{Key: "risk_level", Value: []byte(run.Summary.RiskLevel)},
			{Key: "generated_at", Value: []byte(run.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
