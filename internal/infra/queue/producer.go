package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/zapatende/landing-api/internal/entity"
)

type ClickPayload struct {
	LinkID    string    `json:"link_id"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	ClickedAt time.Time `json:"clicked_at"`
}

type ClickProducerInterface interface {
	PublishClick(ctx context.Context, payload ClickPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishClick(ctx context.Context, payload ClickPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}

// Dispatch implementa usecase.ClickDispatcher: publica o clique na fila
// sem propagar falha — o redirect já foi (ou vai ser) respondido.
func (p *RabbitMQProducer) Dispatch(click entity.LinkClick) {
	go func() {
		payload := ClickPayload{
			LinkID:    click.LinkID,
			UserAgent: click.UserAgent,
			IPAddress: click.IPAddress,
			ClickedAt: click.CreatedAt,
		}
		if err := p.PublishClick(context.Background(), payload); err != nil {
			log.Printf("⚠️ Clique do link %s perdido (fila indisponível): %v", click.LinkID, err)
		}
	}()
}
