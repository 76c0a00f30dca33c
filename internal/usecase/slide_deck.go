package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zapatende/landing-api/internal/entity"
)

// RequestSlideDeckUseCase é o fluxo de menor fricção: só email,
// upsert ignorando duplicado e envio da apresentação em PDF.
type RequestSlideDeckUseCase struct {
	Leads   LeadRepository
	Email   EmailService
	DeckURL string
}

func NewRequestSlideDeckUseCase(leads LeadRepository, email EmailService, deckURL string) *RequestSlideDeckUseCase {
	return &RequestSlideDeckUseCase{
		Leads:   leads,
		Email:   email,
		DeckURL: deckURL,
	}
}

func (uc *RequestSlideDeckUseCase) Execute(ctx context.Context, input SlideDeckInput) (*SlideDeckOutput, error) {
	if verr := ValidateSlideDeckInput(input); verr != nil {
		return nil, verr
	}

	lead := &entity.Lead{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		Source:    entity.SourceWebsite,
		Status:    entity.LeadStatusNew,
		LeadScore: entity.ScoreSlideDeck,
		CreatedAt: time.Now(),
	}

	if err := uc.Leads.UpsertByEmail(ctx, lead); err != nil {
		log.Printf("⚠️ Falha ao registrar pedido de apresentação de %s: %v", lead.Email, err)
	}

	go func() {
		if uc.Email == nil {
			return
		}
		if err := uc.Email.SendSlideDeck(lead.Email, lead.Name, uc.DeckURL); err != nil {
			log.Printf("⚠️ Envio da apresentação falhou para %s: %v", lead.Email, err)
		}
	}()

	return &SlideDeckOutput{
		Success: true,
		Message: "Apresentação a caminho! Confere sua caixa de entrada. 📬",
	}, nil
}
