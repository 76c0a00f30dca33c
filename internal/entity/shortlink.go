package entity

import "time"

// ShortLink mapeia um slug curto para um deep link do WhatsApp (wa.me).
// O destino é imutável depois de criado: não existe edição nem expiração.
type ShortLink struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	DestinationURL string    `json:"destination_url"`
	OwnerEmail     string    `json:"owner_email,omitempty"`
	ClickCount     int64     `json:"click_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// LinkClick é um evento append-only de analytics. Sem retenção definida.
type LinkClick struct {
	LinkID    string    `json:"link_id"`
	UserAgent string    `json:"user_agent,omitempty"`
	IPAddress string    `json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
