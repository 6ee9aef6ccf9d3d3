package rmqconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"file-uploader/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

type (
	// Remover deletes a blob by its storage key.
	Remover interface {
		Remove(ctx context.Context, key string) error
	}

	Consumer struct {
		cfg        config.MQ
		log        *zap.Logger
		remover    Remover
		conn       *amqp091.Connection
		chConsume  *amqp091.Channel
		chDelivery <-chan amqp091.Delivery
	}

	message struct {
		Key    string `json:"storage_key"`
		Reason string `json:"reason"`
	}
)

var errEmptyKey = errors.New("orphan event without storage key")

func New(cfg config.MQ, logger *zap.Logger, remover Remover) *Consumer {
	return &Consumer{
		cfg:     cfg,
		log:     logger,
		remover: remover,
	}
}

func (c *Consumer) Connect(dsn string) error {
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.conn, c.chConsume = conn, ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	if err := c.chConsume.QueueBind(
		c.cfg.QueueName,
		c.cfg.RoutingKey,
		c.cfg.Exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue bind %s: %w", c.cfg.RoutingKey, err)
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var err error
	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			if err := c.delivery(ctx, msg); err != nil {
				c.log.Error("orphan blob cleanup failed",
					zap.String("message_id", msg.MessageId),
					zap.Error(err),
				)
			}
		case <-ctx.Done():
			if c.chConsume != nil {
				_ = c.chConsume.Close()
			}
			if c.conn != nil {
				_ = c.conn.Close()
			}
			return
		}
	}
}

// delivery removes the blob named by msg. Any failure is nacked without
// requeue; blobs that stay behind are collected by the storage sweep.
func (c *Consumer) delivery(ctx context.Context, msg amqp091.Delivery) error {
	var m message
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		_ = msg.Nack(false, false)
		return fmt.Errorf("decode event: %w", err)
	}
	if m.Key == "" {
		_ = msg.Nack(false, false)
		return errEmptyKey
	}

	if err := c.remover.Remove(ctx, m.Key); err != nil {
		_ = msg.Nack(false, false)
		return fmt.Errorf("remove %q: %w", m.Key, err)
	}

	c.log.Info("orphan blob removed",
		zap.String("key", m.Key),
		zap.String("reason", m.Reason),
	)

	return msg.Ack(false)
}
