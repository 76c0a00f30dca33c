package usecase

import (
	"regexp"
	"strings"
)

// Regex permissivo no formato local@dominio.tld (ASCII).
// Basta ter "@" e um ponto no domínio; quem valida de verdade é o envio.
var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+(\.[A-Za-z0-9\-]+)+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

func ValidateCaptureLeadInput(input CaptureLeadInput) *DomainError {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return &DomainError{Code: "MISSING_EMAIL", Message: "Email é obrigatório"}
	}
	if !IsValidEmail(email) {
		return &DomainError{Code: "INVALID_EMAIL", Message: "Email inválido"}
	}
	if strings.TrimSpace(input.Name) == "" && strings.TrimSpace(input.Company) == "" {
		return &DomainError{Code: "MISSING_NAME", Message: "Informe seu nome ou o nome da empresa"}
	}
	return nil
}

func ValidateSlideDeckInput(input SlideDeckInput) *DomainError {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return &DomainError{Code: "MISSING_EMAIL", Message: "Email é obrigatório"}
	}
	if !IsValidEmail(email) {
		return &DomainError{Code: "INVALID_EMAIL", Message: "Email inválido"}
	}
	return nil
}

func ValidateSignupInput(input SignupInput) *DomainError {
	if strings.TrimSpace(input.BusinessName) == "" || strings.TrimSpace(input.Email) == "" {
		return &DomainError{Code: "MISSING_REQUIRED_FIELDS", Message: "business_name e email são obrigatórios"}
	}
	if !IsValidEmail(input.Email) {
		return &DomainError{Code: "INVALID_EMAIL", Message: "Email inválido"}
	}
	return nil
}

func ValidateSendInput(input SendMessageInput) *DomainError {
	if strings.TrimSpace(input.To) == "" || strings.TrimSpace(input.Message) == "" {
		return &DomainError{Code: "MISSING_REQUIRED_FIELDS", Message: "to e message são obrigatórios"}
	}
	return nil
}

func ValidateCreateLinkInput(input CreateLinkInput) *DomainError {
	if strings.TrimSpace(input.Phone) == "" || strings.TrimSpace(input.Message) == "" {
		return &DomainError{Code: "MISSING_REQUIRED_FIELDS", Message: "phone e message são obrigatórios"}
	}
	return nil
}
