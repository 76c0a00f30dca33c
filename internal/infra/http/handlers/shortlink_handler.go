package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zapatende/landing-api/internal/infra/database"
	mw "github.com/zapatende/landing-api/internal/infra/http/middleware"
	"github.com/zapatende/landing-api/internal/usecase"
)

type ShortLinkHandler struct {
	CreateUC  *usecase.CreateShortLinkUseCase
	ResolveUC *usecase.ResolveShortLinkUseCase
}

func NewShortLinkHandler(createUC *usecase.CreateShortLinkUseCase, resolveUC *usecase.ResolveShortLinkUseCase) *ShortLinkHandler {
	return &ShortLinkHandler{
		CreateUC:  createUC,
		ResolveUC: resolveUC,
	}
}

func (h *ShortLinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLinkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		if derr, ok := err.(*usecase.DomainError); ok {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": derr.Message})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "não foi possível criar o link"})
		return
	}

	mw.RecordLinkCreated()
	writeJSON(w, http.StatusOK, output)
}

// Redirect responde o 301 sem esperar o analytics: o clique é despachado
// em background pelo usecase.
func (h *ShortLinkHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "link não encontrado"})
		return
	}

	destination, err := h.ResolveUC.Execute(r.Context(), slug, r.UserAgent(), getClientIP(r))
	if err != nil {
		if errors.Is(err, database.ErrLinkNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "link não encontrado"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "erro ao resolver o link"})
		return
	}

	mw.RecordRedirect()
	http.Redirect(w, r, destination, http.StatusMovedPermanently)
}
