package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/utils/metrics"
	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	dispositionAck        = "ack"
	dispositionRetry      = "retry"
	dispositionDeadLetter = "dead_letter"
	dispositionInvalid    = "invalid"
)

// OrderEventHandler applies one order lifecycle event.
type OrderEventHandler interface {
	HandleOrderEvent(ctx context.Context, ev *model.OrderEvent) (*model.ReservationResult, error)
}

// channelPublisher is the part of *amqp091.Channel used to requeue a failed delivery.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	requeue    channelPublisher
	handler    OrderEventHandler
	prefetch   int
	maxRetries int
}

func NewConsumer(cfg config.RabbitMQConfig, handler OrderEventHandler) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}

	if err := declareOrderEventTopology(channel, cfg.RetryDelay); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	prefetch := cfg.PrefetchCount
	if prefetch <= 0 {
		prefetch = 1
	}
	return &Consumer{
		conn:       conn,
		channel:    channel,
		requeue:    channel,
		handler:    handler,
		prefetch:   prefetch,
		maxRetries: cfg.MaxRetries,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	if err := c.channel.Qos(c.prefetch, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		OrderEventsQueue,
		"stock-ledger", // consumer tag
		false,          // auto-ack
		false,          // exclusive
		false,          // no-local
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("[OrderEventConsumer] delivery channel closed")
					return
				}
				c.handleDelivery(ctx, msg)
			}
		}
	}()

	return nil
}

// handleDelivery acks applied events. Failures are parked in the retry queue with an
// incremented x-retry-count until maxRetries, then rejected into the dead-letter queue.
// Malformed payloads go to the dead-letter queue at once.
func (c *Consumer) handleDelivery(ctx context.Context, msg amqp091.Delivery) {
	routingKey := eventRoutingKey(msg)
	var ev model.OrderEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		c.deadLetter(msg, dispositionInvalid, "malformed order event", err)
		return
	}
	if ev.EventType == "" {
		ev.EventType = constant.OrderEventType(routingKey)
	}
	if err := validatorx.ValidateStruct(&ev); err != nil {
		c.deadLetter(msg, dispositionInvalid, "invalid order event", err)
		return
	}

	result, err := c.handler.HandleOrderEvent(ctx, &ev)
	if err == nil {
		if ackErr := msg.Ack(false); ackErr != nil {
			logger.Error("[OrderEventConsumer] ack", zap.String("error", ackErr.Error()))
		}
		metrics.ObserveDelivery(routingKey, dispositionAck)
		logger.Info("[OrderEventConsumer] order event handled",
			zap.Uint64("order_id", ev.OrderID),
			zap.String("event_type", string(ev.EventType)),
			zap.String("outcome", string(result.Outcome)))
		return
	}
	if errors.IsType(err, constant.ErrInvalidRequest) {
		c.deadLetter(msg, dispositionInvalid, "order event rejected", err)
		return
	}

	retries := retryCount(msg.Headers)
	if retries >= c.maxRetries {
		logger.Error("[OrderEventConsumer] ALERT retries exhausted, dead-lettering order event",
			zap.Uint64("order_id", ev.OrderID),
			zap.String("routing_key", routingKey),
			zap.Int("retries", retries),
			zap.String("error", err.Error()))
		c.deadLetter(msg, dispositionDeadLetter, "retries exhausted", err)
		return
	}

	headers := amqp091.Table{}
	for k, v := range msg.Headers {
		headers[k] = v
	}
	headers[retryCountHeader] = int32(retries + 1)
	headers[originalRoutingKeyHeader] = routingKey
	pubErr := c.requeue.PublishWithContext(ctx, "", OrderEventsRetryQueue, false, false, amqp091.Publishing{
		ContentType:  msg.ContentType,
		DeliveryMode: amqp091.Persistent,
		MessageId:    msg.MessageId,
		Headers:      headers,
		Body:         msg.Body,
	})
	if pubErr != nil {
		logger.Error("[OrderEventConsumer] republish failed, requeueing", zap.String("error", pubErr.Error()))
		_ = msg.Nack(false, true)
		metrics.ObserveDelivery(routingKey, dispositionRetry)
		return
	}
	_ = msg.Ack(false)
	metrics.ObserveDelivery(routingKey, dispositionRetry)
	logger.Warn("[OrderEventConsumer] order event failed, scheduled retry",
		zap.Uint64("order_id", ev.OrderID),
		zap.Int("retry", retries+1),
		zap.String("error", err.Error()))
}

func (c *Consumer) deadLetter(msg amqp091.Delivery, disposition, reason string, err error) {
	routingKey := eventRoutingKey(msg)
	logger.Error("[OrderEventConsumer] "+reason,
		zap.String("routing_key", routingKey),
		zap.String("error", err.Error()))
	if nackErr := msg.Nack(false, false); nackErr != nil {
		logger.Error("[OrderEventConsumer] nack", zap.String("error", nackErr.Error()))
	}
	metrics.ObserveDelivery(routingKey, disposition)
}

// eventRoutingKey is the key the order service published with. Deliveries coming back
// from the retry queue carry it in a header.
func eventRoutingKey(msg amqp091.Delivery) string {
	if key, ok := msg.Headers[originalRoutingKeyHeader].(string); ok && key != "" {
		return key
	}
	return msg.RoutingKey
}

func retryCount(headers amqp091.Table) int {
	switch v := headers[retryCountHeader].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
