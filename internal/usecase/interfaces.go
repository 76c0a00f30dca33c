package usecase

import (
	"context"
	"time"

	"github.com/zapatende/landing-api/internal/entity"
	"github.com/zapatende/landing-api/internal/infra/integration/openai"
)

type LeadRepository interface {
	// Insert retorna database.ErrDuplicateEmail quando o email já existe.
	Insert(ctx context.Context, lead *entity.Lead) error

	// UpsertByEmail ignora conflito de email (DO NOTHING).
	UpsertByEmail(ctx context.Context, lead *entity.Lead) error

	UpdateEmailSentAt(ctx context.Context, id string, sentAt time.Time) error
}

type ShortLinkRepository interface {
	Insert(ctx context.Context, link *entity.ShortLink) error
	FindBySlug(ctx context.Context, slug string) (*entity.ShortLink, error)
	IncrementClickCount(ctx context.Context, id string) error
	InsertClick(ctx context.Context, click *entity.LinkClick) error
}

type EmailService interface {
	SendConfirmation(to, name, company string) error
	SendSlideDeck(to, name, deckLink string) error
}

// OwnerNotifier avisa o operador por WhatsApp via o relay da API de produção.
type OwnerNotifier interface {
	SendMessage(to, message string) error
}

type ChatModel interface {
	Complete(ctx context.Context, messages []openai.Message) (string, error)
}

// ClickDispatcher registra um clique sem bloquear o redirect.
// Implementações logam a própria falha; o chamador nunca espera.
type ClickDispatcher interface {
	Dispatch(click entity.LinkClick)
}
