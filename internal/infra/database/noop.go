package database

import (
	"context"
	"log"
	"time"

	"github.com/zapatende/landing-api/internal/entity"
)

// Repositórios no-op usados quando DATABASE_URL não está configurado.
// Toda escrita vira no-op com warning; o site continua no ar.

type NoopLeadRepository struct{}

func NewNoopLeadRepository() *NoopLeadRepository {
	log.Println("⚠️ DATABASE_URL não configurado: persistência de leads desabilitada")
	return &NoopLeadRepository{}
}

func (r *NoopLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	log.Printf("⚠️ Banco não configurado: ignorando insert do lead %s", lead.Email)
	return nil
}

func (r *NoopLeadRepository) UpsertByEmail(ctx context.Context, lead *entity.Lead) error {
	log.Printf("⚠️ Banco não configurado: ignorando upsert do lead %s", lead.Email)
	return nil
}

func (r *NoopLeadRepository) UpdateEmailSentAt(ctx context.Context, id string, sentAt time.Time) error {
	log.Println("⚠️ Banco não configurado: ignorando update de email_sent_at")
	return nil
}

type NoopShortLinkRepository struct{}

func NewNoopShortLinkRepository() *NoopShortLinkRepository {
	log.Println("⚠️ DATABASE_URL não configurado: short links desabilitados")
	return &NoopShortLinkRepository{}
}

func (r *NoopShortLinkRepository) Insert(ctx context.Context, link *entity.ShortLink) error {
	log.Printf("⚠️ Banco não configurado: ignorando insert do link %s", link.Slug)
	return nil
}

func (r *NoopShortLinkRepository) FindBySlug(ctx context.Context, slug string) (*entity.ShortLink, error) {
	log.Printf("⚠️ Banco não configurado: slug %s tratado como inexistente", slug)
	return nil, ErrLinkNotFound
}

func (r *NoopShortLinkRepository) IncrementClickCount(ctx context.Context, id string) error {
	return nil
}

func (r *NoopShortLinkRepository) InsertClick(ctx context.Context, click *entity.LinkClick) error {
	return nil
}
