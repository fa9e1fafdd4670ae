package mq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ConsumerConfig declares the queue topology for a worker: the topic
// exchange to bind, the routing keys to receive, an optional dead
// letter exchange for deliveries that keep failing.
type ConsumerConfig struct {
	URL      string
	Exchange string
	Queue    string
	Keys     []string
	Prefetch int
	DLX      string // empty disables dead lettering
	DLQ      string
}

type Consumer struct {
	cfg  ConsumerConfig
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	c := &Consumer{cfg: cfg, conn: conn, ch: ch}
	if err := c.declare(); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *Consumer) declare() error {
	if err := c.ch.ExchangeDeclare(c.cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	args := amqp.Table{}
	if c.cfg.DLX != "" {
		args["x-dead-letter-exchange"] = c.cfg.DLX
	}
	q, err := c.ch.QueueDeclare(c.cfg.Queue, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	for _, key := range c.cfg.Keys {
		if err := c.ch.QueueBind(q.Name, key, c.cfg.Exchange, false, nil); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if c.cfg.DLX != "" {
		if err := c.ch.ExchangeDeclare(c.cfg.DLX, "topic", true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare dlx: %w", err)
		}
		if _, err := c.ch.QueueDeclare(c.cfg.DLQ, true, false, false, false, nil); err != nil {
			return fmt.Errorf("declare dlq: %w", err)
		}
		if err := c.ch.QueueBind(c.cfg.DLQ, "#", c.cfg.DLX, false, nil); err != nil {
			return fmt.Errorf("bind dlq: %w", err)
		}
	}

	prefetch := c.cfg.Prefetch
	if prefetch <= 0 {
		prefetch = 8
	}
	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("set qos: %w", err)
	}
	return nil
}

func (c *Consumer) Deliveries(ctx context.Context, consumerTag string) (<-chan amqp.Delivery, error) {
	return c.ch.ConsumeWithContext(ctx, c.cfg.Queue, consumerTag, false, false, false, false, nil)
}

func (c *Consumer) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
