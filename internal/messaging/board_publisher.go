package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"manifest-server/internal/interfaces"
)

const (
	// ExchangeBoardEvents - имя exchange для событий сгенерированных досок.
	ExchangeBoardEvents = "board_events"
)

var _ interfaces.BoardEventPublisher = (*RabbitMQBoardPublisher)(nil)

// RabbitMQBoardPublisher реализует BoardEventPublisher поверх RabbitMQ.
type RabbitMQBoardPublisher struct {
	conn *amqp091.Connection
	ch   *amqp091.Channel
}

// NewRabbitMQBoardPublisher создает издателя событий досок.
// Предполагается, что соединение уже установлено; переподключениями
// управляет внешний код, передающий сюда стабильное соединение.
func NewRabbitMQBoardPublisher(conn *amqp091.Connection) (*RabbitMQBoardPublisher, error) {
	if conn == nil {
		return nil, fmt.Errorf("rabbitmq connection is nil")
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open a channel")
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	// Durable fanout: подписчики (персистенс, уведомления) получают каждое
	// событие, exchange переживает перезапуск брокера.
	err = ch.ExchangeDeclare(
		ExchangeBoardEvents, // name
		"fanout",            // type
		true,                // durable
		false,               // auto-deleted
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		_ = ch.Close()
		log.Error().Err(err).Str("exchange", ExchangeBoardEvents).Msg("Failed to declare exchange")
		return nil, fmt.Errorf("failed to declare exchange '%s': %w", ExchangeBoardEvents, err)
	}

	log.Info().Str("exchange", ExchangeBoardEvents).Msg("Board events exchange declared successfully")

	return &RabbitMQBoardPublisher{conn: conn, ch: ch}, nil
}

// PublishBoardGenerated публикует событие о сгенерированной доске.
func (p *RabbitMQBoardPublisher) PublishBoardGenerated(ctx context.Context, event interfaces.BoardGeneratedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Interface("event", event).Msg("Failed to marshal board event")
		return fmt.Errorf("failed to marshal board event: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeBoardEvents, // exchange
		"",                  // routing key (не используется для fanout)
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		log.Error().Err(err).Interface("event", event).Msg("Failed to publish board event")
		return fmt.Errorf("failed to publish board event: %w", err)
	}

	log.Debug().Str("user_id", event.UserID).Str("template", event.Template).Msg("Board event published")
	return nil
}

// Close закрывает канал RabbitMQ.
func (p *RabbitMQBoardPublisher) Close() error {
	if p.ch != nil {
		return p.ch.Close()
	}
	return nil
}
