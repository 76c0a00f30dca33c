package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/zapatende/landing-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads
			(id, name, email, phone, company, industry, source, marketing_consent, status, lead_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		nullString(lead.Name),
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.Industry),
		string(lead.Source),
		lead.MarketingConsent,
		lead.Status,
		lead.LeadScore,
	).Scan(&lead.CreatedAt)

	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return ErrDuplicateEmail
	}

	return err
}

func (r *LeadRepository) UpsertByEmail(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads
			(id, name, email, source, status, lead_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		lead.ID,
		nullString(lead.Name),
		lead.Email,
		string(lead.Source),
		lead.Status,
		lead.LeadScore,
	)

	return err
}

func (r *LeadRepository) UpdateEmailSentAt(ctx context.Context, id string, sentAt time.Time) error {
	query := `UPDATE leads SET email_sent_at = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.DB.ExecContext(ctx, query, id, sentAt)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
