package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zapatende/landing-api/internal/entity"
)

// Alfabeto URL-safe; 5 chars ~ 62^5 combinações, colisão tratada
// como excepcional (sem retry — falha a criação e loga).
const slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const slugLength = 5

var nonDigits = regexp.MustCompile(`\D`)

func newSlug() string {
	buf := make([]byte, slugLength)
	rand.Read(buf)

	out := make([]byte, slugLength)
	for i, b := range buf {
		out[i] = slugAlphabet[int(b)%len(slugAlphabet)]
	}
	return string(out)
}

// buildWhatsAppURL monta o deep link wa.me com a mensagem pré-preenchida.
func buildWhatsAppURL(phone, message string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
}

type CreateShortLinkUseCase struct {
	Links   ShortLinkRepository
	BaseURL string
}

func NewCreateShortLinkUseCase(links ShortLinkRepository, baseURL string) *CreateShortLinkUseCase {
	return &CreateShortLinkUseCase{
		Links:   links,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (uc *CreateShortLinkUseCase) Execute(ctx context.Context, input CreateLinkInput) (*CreateLinkOutput, error) {
	if verr := ValidateCreateLinkInput(input); verr != nil {
		return nil, verr
	}

	link := &entity.ShortLink{
		ID:             uuid.New().String(),
		Slug:           newSlug(),
		DestinationURL: buildWhatsAppURL(input.Phone, input.Message),
		OwnerEmail:     strings.ToLower(strings.TrimSpace(input.Email)),
		CreatedAt:      time.Now(),
	}

	if err := uc.Links.Insert(ctx, link); err != nil {
		// Colisão de slug cai aqui também; sem retry por enquanto
		log.Printf("❌ Falha ao criar short link (slug %s): %v", link.Slug, err)
		return nil, &TechnicalError{Code: "INTERNAL_ERROR", Message: "não foi possível criar o link"}
	}

	return &CreateLinkOutput{
		ShortLink:   uc.BaseURL + "/l/" + link.Slug,
		OriginalURL: link.DestinationURL,
		TrackingID:  link.ID,
	}, nil
}

type ResolveShortLinkUseCase struct {
	Links  ShortLinkRepository
	Clicks ClickDispatcher
}

func NewResolveShortLinkUseCase(links ShortLinkRepository, clicks ClickDispatcher) *ResolveShortLinkUseCase {
	return &ResolveShortLinkUseCase{
		Links:  links,
		Clicks: clicks,
	}
}

// Execute resolve o slug e despacha o clique sem esperar: o redirect
// tem prioridade sobre a durabilidade do analytics.
func (uc *ResolveShortLinkUseCase) Execute(ctx context.Context, slug, userAgent, ip string) (string, error) {
	link, err := uc.Links.FindBySlug(ctx, slug)
	if err != nil {
		return "", err
	}

	if uc.Clicks != nil {
		uc.Clicks.Dispatch(entity.LinkClick{
			LinkID:    link.ID,
			UserAgent: userAgent,
			IPAddress: ip,
			CreatedAt: time.Now(),
		})
	}

	return link.DestinationURL, nil
}

// StoreClickDispatcher grava o clique direto no banco, em background.
// É o fallback quando a fila de analytics não está configurada.
type StoreClickDispatcher struct {
	Links ShortLinkRepository
}

func NewStoreClickDispatcher(links ShortLinkRepository) *StoreClickDispatcher {
	return &StoreClickDispatcher{Links: links}
}

func (d *StoreClickDispatcher) Dispatch(click entity.LinkClick) {
	go func() {
		ctx := context.Background()
		if err := d.Links.IncrementClickCount(ctx, click.LinkID); err != nil {
			log.Printf("⚠️ Falha ao incrementar contador do link %s: %v", click.LinkID, err)
		}
		if err := d.Links.InsertClick(ctx, &click); err != nil {
			log.Printf("⚠️ Falha ao registrar clique do link %s: %v", click.LinkID, err)
		}
	}()
}
