package handlers

import (
	"encoding/json"
	"net/http"

	mw "github.com/zapatende/landing-api/internal/infra/http/middleware"
	"github.com/zapatende/landing-api/internal/infra/integration/atende"
	"github.com/zapatende/landing-api/internal/usecase"
)

// UpstreamGateway é o contrato com a API de produção (proxy puro).
type UpstreamGateway interface {
	Signup(input atende.SignupInput) (*atende.ProxyResponse, error)
	RelayMessage(input atende.SendMessageInput) (*atende.ProxyResponse, error)
}

type OnboardingHandler struct {
	Upstream UpstreamGateway
}

func NewOnboardingHandler(upstream UpstreamGateway) *OnboardingHandler {
	return &OnboardingHandler{Upstream: upstream}
}

func (h *OnboardingHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if verr := usecase.ValidateSignupInput(input); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Code, verr.Message)
		return
	}

	resp, err := h.Upstream.Signup(atende.SignupInput{
		BusinessName: input.BusinessName,
		Email:        input.Email,
		Phone:        input.Phone,
	})
	if err != nil {
		mw.RecordIntegrationError("upstream")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Não conseguimos falar com o servidor. Tenta de novo?")
		return
	}

	// Proxy puro: espelha status e corpo do upstream
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}
