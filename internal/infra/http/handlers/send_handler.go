package handlers

import (
	"encoding/json"
	"net/http"

	mw "github.com/zapatende/landing-api/internal/infra/http/middleware"
	"github.com/zapatende/landing-api/internal/infra/integration/atende"
	"github.com/zapatende/landing-api/internal/usecase"
)

type SendHandler struct {
	Upstream UpstreamGateway
}

func NewSendHandler(upstream UpstreamGateway) *SendHandler {
	return &SendHandler{Upstream: upstream}
}

func (h *SendHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if verr := usecase.ValidateSendInput(input); verr != nil {
		writeError(w, http.StatusBadRequest, verr.Code, verr.Message)
		return
	}

	resp, err := h.Upstream.RelayMessage(atende.SendMessageInput{
		To:      input.To,
		Message: input.Message,
	})
	if err != nil {
		mw.RecordIntegrationError("upstream")
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Não conseguimos falar com o servidor. Tenta de novo?")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}
