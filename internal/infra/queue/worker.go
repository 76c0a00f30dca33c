package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/zapatende/landing-api/internal/entity"
)

// ClickWriter é o contrato mínimo que o worker precisa do repositório.
type ClickWriter interface {
	IncrementClickCount(ctx context.Context, id string) error
	InsertClick(ctx context.Context, click *entity.LinkClick) error
}

type Worker struct {
	Channel *amqp.Channel
	Links   ClickWriter
}

func NewWorker(ch *amqp.Channel, links ClickWriter) *Worker {
	return &Worker{
		Channel: ch,
		Links:   links,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ClickPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON inválido: %s", err)
				// Mensagem podre: rejeita sem requeue para não travar a fila
				d.Nack(false, false)
				continue
			}

			if err := w.processClick(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Falha ao gravar clique do link %s: %s", payload.LinkID, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de analytics aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processClick(ctx context.Context, payload ClickPayload) error {
	if err := w.Links.IncrementClickCount(ctx, payload.LinkID); err != nil {
		return err
	}

	return w.Links.InsertClick(ctx, &entity.LinkClick{
		LinkID:    payload.LinkID,
		UserAgent: payload.UserAgent,
		IPAddress: payload.IPAddress,
		CreatedAt: payload.ClickedAt,
	})
}
