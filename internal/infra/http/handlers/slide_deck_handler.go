package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zapatende/landing-api/internal/usecase"
)

type SlideDeckHandler struct {
	RequestUC *usecase.RequestSlideDeckUseCase
}

func NewSlideDeckHandler(uc *usecase.RequestSlideDeckUseCase) *SlideDeckHandler {
	return &SlideDeckHandler{RequestUC: uc}
}

func (h *SlideDeckHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SlideDeckInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.RequestUC.Execute(r.Context(), input)
	if err != nil {
		if derr, ok := err.(*usecase.DomainError); ok {
			writeError(w, http.StatusBadRequest, derr.Code, derr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Algo deu errado. Tenta de novo?")
		return
	}

	writeJSON(w, http.StatusOK, output)
}
