package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/zapatende/landing-api/internal/entity"
	mw "github.com/zapatende/landing-api/internal/infra/http/middleware"
	"github.com/zapatende/landing-api/internal/usecase"
)

type LeadHandler struct {
	CaptureUC   *usecase.CaptureLeadUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(uc *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CaptureUC:   uc,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min por IP
	}
}

func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Muitas tentativas. Tenta de novo em instantes.")
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.CaptureUC.Execute(r.Context(), input)
	if err != nil {
		if derr, ok := err.(*usecase.DomainError); ok {
			writeError(w, http.StatusBadRequest, derr.Code, derr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Algo deu errado. Tenta de novo?")
		return
	}

	mw.RecordLeadCaptured(string(entity.NormalizeSource(input.Source)))
	writeJSON(w, http.StatusOK, output)
}

// RateLimiter simples por IP, em memória. Suficiente para um form público.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
