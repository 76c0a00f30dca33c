package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zapatende/landing-api/internal/infra/integration/openai"
	"github.com/zapatende/landing-api/internal/usecase"
)

type ChatHandler struct {
	ChatUC *usecase.ChatDemoUseCase
}

func NewChatHandler(uc *usecase.ChatDemoUseCase) *ChatHandler {
	return &ChatHandler{ChatUC: uc}
}

type ChatRequest struct {
	History []openai.Message `json:"history"`
	Message string           `json:"message"`
}

type ChatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}

// Handle sempre responde 200: o widget do site nunca mostra erro técnico,
// no máximo a Zapi pede desculpas e sugere o WhatsApp.
func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, ChatResponse{
			Success:  true,
			Response: usecase.ChatFallbackMessage,
		})
		return
	}

	reply := h.ChatUC.Execute(r.Context(), req.History, req.Message)

	writeJSON(w, http.StatusOK, ChatResponse{
		Success:  true,
		Response: reply,
	})
}
