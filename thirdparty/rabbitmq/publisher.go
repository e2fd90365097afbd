package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/rabbitmq/amqp091-go"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel channelPublisher
	closer  interface{ Close() error }
}

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(
		StockEventsExchange, // name
		"topic",             // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, closer: channel}, nil
}

// PublishReservationResult announces the outcome of an order event on
// stock.reservation.<outcome>.
func (p *Publisher) PublishReservationResult(ctx context.Context, result *model.ReservationResult) error {
	body, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		StockEventsExchange, // exchange
		fmt.Sprintf("stock.reservation.%s", result.Outcome), // routing key
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    fmt.Sprintf("%d:%d:%s:%d", result.TenantID, result.OrderID, result.EventType, result.Version),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.closer != nil {
		p.closer.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
