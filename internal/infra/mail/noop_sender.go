package mail

import "log"

// NoopSender entra no lugar do EmailSender quando o SMTP não está
// configurado: loga e segue, sem derrubar o fluxo de captura.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	log.Println("⚠️ SMTP não configurado: envio de email desabilitado")
	return &NoopSender{}
}

func (s *NoopSender) SendConfirmation(to, name, company string) error {
	log.Printf("⚠️ Email desabilitado: pulando confirmação para %s", to)
	return nil
}

func (s *NoopSender) SendSlideDeck(to, name, deckLink string) error {
	log.Printf("⚠️ Email desabilitado: pulando apresentação para %s", to)
	return nil
}
