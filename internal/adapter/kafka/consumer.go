// Package kafka consumes the upstream suggestion feed.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/heartmarshall/compliance-backend/internal/config"
	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// defaultBackoff is the wait before each retry of a failed store attempt.
var defaultBackoff = []time.Duration{time.Second, 5 * time.Second, 15 * time.Second}

// SuggestionMessage is one record of the suggestion topic.
type SuggestionMessage struct {
	TenantID uuid.UUID       `json:"tenant_id"`
	RecordID uuid.UUID       `json:"record_id"`
	Payload  json.RawMessage `json:"payload"`
}

// SuggestionHandler stores a decoded message. Validation and not-found errors
// skip the message. Any other error is retried and then stops the consumer
// with the batch uncommitted, so it is redelivered.
type SuggestionHandler interface {
	RecordSuggestions(ctx context.Context, tenantID, recordID uuid.UUID, raw []byte) error
}

// fetchClient is the part of *kgo.Client used by the consumer.
type fetchClient interface {
	PollFetches(ctx context.Context) kgo.Fetches
	CommitUncommittedOffsets(ctx context.Context) error
	Close()
}

// Consumer polls the suggestion topic and forwards each message to a handler.
type Consumer struct {
	client  fetchClient
	handler SuggestionHandler
	backoff []time.Duration
	log     *slog.Logger
}

// NewConsumer joins the configured consumer group. Offsets are committed
// after each polled batch has been handled.
func NewConsumer(cfg config.KafkaConfig, handler SuggestionHandler, logger *slog.Logger) (*Consumer, error) {
	if !cfg.Enabled() {
		return nil, errors.New("kafka brokers are not configured")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.BrokerList...),
		kgo.ClientID(cfg.ClientID),
		kgo.ConsumerGroup(cfg.ConsumerGroup),
		kgo.ConsumeTopics(cfg.SuggestionTopic),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return newConsumer(client, handler, logger), nil
}

func newConsumer(client fetchClient, handler SuggestionHandler, logger *slog.Logger) *Consumer {
	return &Consumer{
		client:  client,
		handler: handler,
		backoff: defaultBackoff,
		log:     logger.With("component", "suggestion_consumer"),
	}
}

// Run polls until ctx is cancelled or the client is closed. Offsets are
// committed only once every record of a batch is stored or skipped. A store
// failure that outlives its retries is returned without committing.
func (c *Consumer) Run(ctx context.Context) error {
	defer c.client.Close()

	for {
		fetches := c.client.PollFetches(ctx)
		if fetches.IsClientClosed() || ctx.Err() != nil {
			return nil
		}

		fetches.EachError(func(topic string, partition int32, err error) {
			c.log.ErrorContext(ctx, "fetch failed",
				slog.String("topic", topic),
				slog.Int("partition", int(partition)),
				slog.String("error", err.Error()),
			)
		})

		handled := 0
		for iter := fetches.RecordIter(); !iter.Done(); {
			if err := c.handle(ctx, iter.Next()); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			handled++
		}

		if handled == 0 {
			continue
		}
		if err := c.client.CommitUncommittedOffsets(ctx); err != nil && ctx.Err() == nil {
			c.log.ErrorContext(ctx, "commit offsets failed", slog.String("error", err.Error()))
		}
	}
}

func (c *Consumer) handle(ctx context.Context, rec *kgo.Record) error {
	msg, err := Decode(rec.Value)
	if err != nil {
		c.log.WarnContext(ctx, "skipping malformed suggestion message",
			slog.Int64("offset", rec.Offset),
			slog.Int("partition", int(rec.Partition)),
			slog.String("error", err.Error()),
		)
		return nil
	}

	for attempt := 0; ; attempt++ {
		err := c.handler.RecordSuggestions(ctx, msg.TenantID, msg.RecordID, msg.Payload)
		if err == nil {
			return nil
		}
		if skippable(err) {
			c.log.WarnContext(ctx, "skipping rejected suggestion message",
				slog.String("record_id", msg.RecordID.String()),
				slog.Int64("offset", rec.Offset),
				slog.String("error", err.Error()),
			)
			return nil
		}
		if attempt >= len(c.backoff) {
			return fmt.Errorf("record suggestions for %s at offset %d: %w", msg.RecordID, rec.Offset, err)
		}

		c.log.WarnContext(ctx, "record suggestions failed, retrying",
			slog.String("record_id", msg.RecordID.String()),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.backoff[attempt]):
		}
	}
}

// skippable reports business-rule failures that no redelivery can fix.
func skippable(err error) bool {
	return errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound)
}

// Decode parses a message value. Identifiers are mandatory, the payload is
// passed through untouched for tolerant parsing downstream.
func Decode(value []byte) (SuggestionMessage, error) {
	var msg SuggestionMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		return SuggestionMessage{}, fmt.Errorf("decode suggestion message: %w", err)
	}
	if msg.TenantID == uuid.Nil || msg.RecordID == uuid.Nil {
		return SuggestionMessage{}, errors.New("decode suggestion message: tenant_id and record_id are required")
	}
	if len(msg.Payload) == 0 {
		return SuggestionMessage{}, errors.New("decode suggestion message: payload is required")
	}
	return msg, nil
}
