package entity

import "strings"

// Source identifica qual ponto de entrada do site gerou o lead.
type Source string

const (
	SourceHeroForm    Source = "hero_form"
	SourceCalBooking  Source = "cal_booking"
	SourceWaitlist    Source = "waitlist"
	SourceWhatsAppCTA Source = "whatsapp_cta"
	SourceWebsite     Source = "website"
	SourceReferral    Source = "referral"
)

var allSources = []Source{
	SourceHeroForm,
	SourceCalBooking,
	SourceWaitlist,
	SourceWhatsAppCTA,
	SourceWebsite,
	SourceReferral,
}

// NormalizeSource mapeia o label livre vindo do front para o enum fechado.
// Sempre retorna um valor válido: match exato, depois heurística por
// substring (a ordem importa), senão cai em "website".
func NormalizeSource(raw string) Source {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return SourceWebsite
	}

	for _, src := range allSources {
		if s == string(src) {
			return src
		}
	}

	switch {
	case strings.Contains(s, "hero"):
		return SourceHeroForm
	case strings.Contains(s, "waitlist"):
		return SourceWaitlist
	case strings.Contains(s, "whatsapp"):
		return SourceWhatsAppCTA
	case strings.Contains(s, "cal"):
		return SourceCalBooking
	case strings.Contains(s, "referral"):
		return SourceReferral
	}

	return SourceWebsite
}
