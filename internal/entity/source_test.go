package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSourceExactMatch(t *testing.T) {
	assert.Equal(t, SourceHeroForm, NormalizeSource("hero_form"))
	assert.Equal(t, SourceCalBooking, NormalizeSource("CAL_BOOKING"))
	assert.Equal(t, SourceReferral, NormalizeSource("  referral  "))
}

func TestNormalizeSourceHeuristics(t *testing.T) {
	assert.Equal(t, SourceHeroForm, NormalizeSource("Hero Landing Page"))
	assert.Equal(t, SourceCalBooking, NormalizeSource("cal.com booking"))
	assert.Equal(t, SourceWaitlist, NormalizeSource("waitlist modal"))
	assert.Equal(t, SourceWhatsAppCTA, NormalizeSource("botão whatsapp do rodapé"))
	assert.Equal(t, SourceReferral, NormalizeSource("referral-program"))
}

// A ordem das heurísticas importa: hero ganha de cal, waitlist ganha de whatsapp.
func TestNormalizeSourceTieBreakOrder(t *testing.T) {
	assert.Equal(t, SourceHeroForm, NormalizeSource("hero cal whatsapp"))
	assert.Equal(t, SourceWaitlist, NormalizeSource("waitlist via whatsapp"))
	assert.Equal(t, SourceWhatsAppCTA, NormalizeSource("whatsapp cal"))
}

func TestNormalizeSourceFallback(t *testing.T) {
	assert.Equal(t, SourceWebsite, NormalizeSource(""))
	assert.Equal(t, SourceWebsite, NormalizeSource("xyz-unknown"))
	assert.Equal(t, SourceWebsite, NormalizeSource("   "))
}
