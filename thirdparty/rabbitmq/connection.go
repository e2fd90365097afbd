package rabbitmq

import (
	"fmt"
	"time"

	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/rabbitmq/amqp091-go"
)

const (
	OrderEventsExchange = "order_events_exchange"
	OrderEventsQueue    = "stock_order_events_queue"
	OrderEventsDLX      = "order_events_dlx"
	OrderEventsDLQ      = "stock_order_events_dlq"
	StockEventsExchange = "stock_events_exchange"

	// OrderEventsRetryQueue parks failed deliveries for the retry delay, then hands them
	// back to OrderEventsQueue only. It has no consumers.
	OrderEventsRetryQueue = "stock_order_events_retry"

	retryCountHeader         = "x-retry-count"
	originalRoutingKeyHeader = "x-original-routing-key"

	defaultRetryDelay = 5 * time.Second
)

// orderEventKeys are the routing keys the stock service listens to.
var orderEventKeys = []string{"order.confirmed", "order.updated", "order.cancelled"}

func dial(cfg config.RabbitMQConfig) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareOrderEventTopology declares the order event exchange, the stock queue bound to it
// and the dead-letter pair that receives rejected deliveries.
func declareOrderEventTopology(channel *amqp091.Channel, retryDelay time.Duration) error {
	if err := channel.ExchangeDeclare(OrderEventsExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if err := channel.ExchangeDeclare(OrderEventsDLX, "fanout", true, false, false, false, nil); err != nil {
		return err
	}

	if _, err := channel.QueueDeclare(OrderEventsDLQ, true, false, false, false, nil); err != nil {
		return err
	}
	if err := channel.QueueBind(OrderEventsDLQ, "", OrderEventsDLX, false, nil); err != nil {
		return err
	}

	_, err := channel.QueueDeclare(
		OrderEventsQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqp091.Table{"x-dead-letter-exchange": OrderEventsDLX},
	)
	if err != nil {
		return err
	}
	for _, key := range orderEventKeys {
		if err := channel.QueueBind(OrderEventsQueue, key, OrderEventsExchange, false, nil); err != nil {
			return err
		}
	}

	// published to through the default exchange, so no binding
	if _, err := channel.QueueDeclare(OrderEventsRetryQueue, true, false, false, false, retryQueueArgs(retryDelay)); err != nil {
		return err
	}
	return nil
}

// retryQueueArgs expires parked messages after delay and dead-letters them straight into
// OrderEventsQueue through the default exchange.
func retryQueueArgs(delay time.Duration) amqp091.Table {
	if delay <= 0 {
		delay = defaultRetryDelay
	}
	return amqp091.Table{
		"x-message-ttl":             delay.Milliseconds(),
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": OrderEventsQueue,
	}
}
