package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"
)

const defaultFrom = "nao-responda@zapatende.com.br"

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	if from == "" {
		from = defaultFrom
	}
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

func (s *EmailSender) SendConfirmation(to, name, company string) error {
	data := ConfirmationEmailData{
		Name:    name,
		Company: company,
	}

	body, err := renderTemplate("confirmation.html", data)
	if err != nil {
		return err
	}

	who := name
	if who == "" {
		who = company
	}

	subject := fmt.Sprintf("Recebemos seu contato, %s! 🚀", who)
	return s.send(to, subject, body)
}

func (s *EmailSender) SendSlideDeck(to, name, deckLink string) error {
	data := SlideDeckEmailData{
		Name:     name,
		DeckLink: deckLink,
	}

	body, err := renderTemplate("slide_deck.html", data)
	if err != nil {
		return err
	}

	return s.send(to, "Sua apresentação da ZapAtende chegou 📊", body)
}

func (s *EmailSender) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func renderTemplate(name string, data interface{}) (string, error) {
	tmplPath := filepath.Join("templates", name)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}

	return body.String(), nil
}
