package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zapatende/landing-api/internal/entity"
	"github.com/zapatende/landing-api/internal/infra/database"
)

type CaptureLeadUseCase struct {
	Leads      LeadRepository
	Email      EmailService
	Notifier   OwnerNotifier
	OwnerPhone string
}

func NewCaptureLeadUseCase(
	leads LeadRepository,
	email EmailService,
	notifier OwnerNotifier,
	ownerPhone string,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Leads:      leads,
		Email:      email,
		Notifier:   notifier,
		OwnerPhone: ownerPhone,
	}
}

// Execute roda o pipeline: valida → normaliza → persiste → notifica.
// Só validação derruba a requisição. Persistência e notificação são
// best-effort: o compromisso com o visitante é "vamos te responder",
// não "garantimos cada side effect".
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	if verr := ValidateCaptureLeadInput(input); verr != nil {
		return nil, verr
	}

	lead := &entity.Lead{
		ID:               uuid.New().String(),
		Name:             strings.TrimSpace(input.Name),
		Email:            strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:            strings.TrimSpace(input.Phone),
		Company:          strings.TrimSpace(input.Company),
		Industry:         strings.TrimSpace(input.Industry),
		Source:           entity.NormalizeSource(input.Source),
		MarketingConsent: input.MarketingConsent,
		Status:           entity.LeadStatusNew,
		LeadScore:        entity.ScoreLeadForm,
		CreatedAt:        time.Now(),
	}

	isNew := true
	if err := uc.Leads.Insert(ctx, lead); err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			// Reenvio do mesmo email não é erro: segue o fluxo normal
			isNew = false
			log.Printf("📋 Lead já cadastrado: %s (seguindo com notificação)", lead.Email)
		} else {
			log.Printf("⚠️ Falha ao salvar lead %s: %v (resposta segue como sucesso)", lead.Email, err)
		}
	}

	// Email e alerta do operador nunca bloqueiam a resposta
	go uc.notify(lead)

	return &CaptureLeadOutput{
		Success:   true,
		Message:   "Recebemos seu contato! Em breve nossa equipe fala com você. 🚀",
		LeadID:    lead.ID,
		IsNewLead: isNew,
	}, nil
}

// notify tenta o email de confirmação antes do alerta do operador.
// Cada um é tentado exatamente uma vez; falha só gera log.
func (uc *CaptureLeadUseCase) notify(lead *entity.Lead) {
	if uc.Email != nil {
		if err := uc.Email.SendConfirmation(lead.Email, lead.Name, lead.Company); err != nil {
			log.Printf("⚠️ Email de confirmação falhou para %s: %v", lead.Email, err)
		} else if err := uc.Leads.UpdateEmailSentAt(context.Background(), lead.ID, time.Now()); err != nil {
			log.Printf("⚠️ Falha ao marcar email_sent_at do lead %s: %v", lead.ID, err)
		}
	}

	if uc.Notifier != nil && uc.OwnerPhone != "" {
		alert := uc.ownerAlertText(lead)
		if err := uc.Notifier.SendMessage(uc.OwnerPhone, alert); err != nil {
			log.Printf("⚠️ Alerta de novo lead falhou: %v", err)
		}
	}
}

func (uc *CaptureLeadUseCase) ownerAlertText(lead *entity.Lead) string {
	who := lead.Name
	if who == "" {
		who = lead.Company
	}
	text := fmt.Sprintf("🔔 Novo lead: %s\n📧 %s\n📌 Fonte: %s", who, lead.Email, lead.Source)
	if lead.Phone != "" {
		text += "\n📱 " + lead.Phone
	}
	if lead.Company != "" && lead.Name != "" {
		text += "\n🏢 " + lead.Company
	}
	return text
}
