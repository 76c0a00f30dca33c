package entity

import (
	"time"
)

type Lead struct {
	ID               string     `json:"id"`
	Name             string     `json:"name,omitempty"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	Company          string     `json:"company,omitempty"`
	Industry         string     `json:"industry,omitempty"`
	Source           Source     `json:"source"`
	MarketingConsent bool       `json:"marketing_consent"`
	Status           string     `json:"status"` // new, contacted, converted
	LeadScore        int        `json:"lead_score"`
	EmailSentAt      *time.Time `json:"email_sent_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

const (
	LeadStatusNew = "new"

	// Score inicial por ponto de entrada
	ScoreLeadForm  = 30
	ScoreSlideDeck = 20
)
