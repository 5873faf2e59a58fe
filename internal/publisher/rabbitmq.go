package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"matchcast/internal/domain"
)

// RabbitMQ publishes run summaries and delivery events for dashboards and
// alerting. Per-channel DeliveryResults are never persisted as entities;
// this feed is how they leave the engine.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// RunMessage is the wire envelope for one completed orchestration run.
type RunMessage struct {
	Event     string            `json:"event"` // "run_completed"
	Run       domain.RunSummary `json:"run"`
	Timestamp time.Time         `json:"timestamp"`
}

// DeliveryMessage is the wire envelope for one fan-out's channel outcomes.
type DeliveryMessage struct {
	Event       string                  `json:"event"` // "content_delivered"
	RunID       string                  `json:"run_id"`
	ContentType string                  `json:"content_type"`
	Language    string                  `json:"language"`
	Results     []domain.DeliveryResult `json:"results"`
	Timestamp   time.Time               `json:"timestamp"`
}

func (r *RabbitMQ) PublishRun(ctx context.Context, run *domain.RunSummary) error {
	msg := RunMessage{
		Event:     "run_completed",
		Run:       *run,
		Timestamp: time.Now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published run summary",
		"run_id", run.ID,
		"trigger", run.Trigger,
	)
	return nil
}

func (r *RabbitMQ) PublishDelivery(ctx context.Context, runID string, contentType domain.ContentType, language string, results []domain.DeliveryResult) error {
	msg := DeliveryMessage{
		Event:       "content_delivered",
		RunID:       runID,
		ContentType: string(contentType),
		Language:    language,
		Results:     results,
		Timestamp:   time.Now().UTC(),
	}
	return r.publish(ctx, msg)
}

func (r *RabbitMQ) publish(ctx context.Context, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
