package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/zapatende/landing-api/internal/entity"
)

type ShortLinkRepository struct {
	DB *sql.DB
}

func NewShortLinkRepository(db *sql.DB) *ShortLinkRepository {
	return &ShortLinkRepository{DB: db}
}

func (r *ShortLinkRepository) Insert(ctx context.Context, link *entity.ShortLink) error {
	query := `
		INSERT INTO short_links (id, slug, destination_url, owner_email)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		link.ID,
		link.Slug,
		link.DestinationURL,
		nullString(link.OwnerEmail),
	).Scan(&link.CreatedAt)
}

func (r *ShortLinkRepository) FindBySlug(ctx context.Context, slug string) (*entity.ShortLink, error) {
	query := `
		SELECT id, slug, destination_url, COALESCE(owner_email, ''), click_count, created_at
		FROM short_links
		WHERE slug = $1
	`

	var link entity.ShortLink
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(
		&link.ID,
		&link.Slug,
		&link.DestinationURL,
		&link.OwnerEmail,
		&link.ClickCount,
		&link.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *ShortLinkRepository) IncrementClickCount(ctx context.Context, id string) error {
	query := `UPDATE short_links SET click_count = click_count + 1 WHERE id = $1`

	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *ShortLinkRepository) InsertClick(ctx context.Context, click *entity.LinkClick) error {
	query := `
		INSERT INTO link_clicks (link_id, user_agent, ip_address, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		click.LinkID,
		nullString(click.UserAgent),
		nullString(click.IPAddress),
		click.CreatedAt,
	)
	return err
}
