package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zapatende/landing-api/internal/infra/integration/atende"
	"github.com/zapatende/landing-api/internal/usecase"
)

type MockUpstreamGateway struct {
	mock.Mock
}

func (m *MockUpstreamGateway) Signup(input atende.SignupInput) (*atende.ProxyResponse, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atende.ProxyResponse), args.Error(1)
}

func (m *MockUpstreamGateway) RelayMessage(input atende.SendMessageInput) (*atende.ProxyResponse, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*atende.ProxyResponse), args.Error(1)
}

func TestOnboardingMissingFields(t *testing.T) {
	handler := NewOnboardingHandler(new(MockUpstreamGateway))

	w := postJSON(t, handler.Handle, "/onboarding/signup", usecase.SignupInput{Email: "joao@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", errResponse["error"])
}

func TestOnboardingInvalidEmail(t *testing.T) {
	handler := NewOnboardingHandler(new(MockUpstreamGateway))

	w := postJSON(t, handler.Handle, "/onboarding/signup", usecase.SignupInput{
		BusinessName: "Padaria do João",
		Email:        "invalido",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "INVALID_EMAIL", errResponse["error"])
}

// Proxy puro: o status e o corpo do upstream voltam como estão.
func TestOnboardingMirrorsUpstreamResponse(t *testing.T) {
	mockGateway := new(MockUpstreamGateway)
	mockGateway.On("Signup", mock.Anything).Return(&atende.ProxyResponse{
		StatusCode: http.StatusConflict,
		Body:       []byte(`{"error":"BUSINESS_ALREADY_EXISTS"}`),
	}, nil)

	handler := NewOnboardingHandler(mockGateway)

	w := postJSON(t, handler.Handle, "/onboarding/signup", usecase.SignupInput{
		BusinessName: "Padaria do João",
		Email:        "joao@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"BUSINESS_ALREADY_EXISTS"}`, w.Body.String())
}

func TestOnboardingUpstreamUnreachable(t *testing.T) {
	mockGateway := new(MockUpstreamGateway)
	mockGateway.On("Signup", mock.Anything).Return(nil, errors.New("connection refused"))

	handler := NewOnboardingHandler(mockGateway)

	w := postJSON(t, handler.Handle, "/onboarding/signup", usecase.SignupInput{
		BusinessName: "Padaria do João",
		Email:        "joao@example.com",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "INTERNAL_ERROR", errResponse["error"])
}

func TestSendMissingFields(t *testing.T) {
	handler := NewSendHandler(new(MockUpstreamGateway))

	w := postJSON(t, handler.Handle, "/send", usecase.SendMessageInput{To: "5511987654321"})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResponse map[string]string
	json.NewDecoder(w.Body).Decode(&errResponse)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", errResponse["error"])
}

func TestSendMirrorsUpstreamResponse(t *testing.T) {
	mockGateway := new(MockUpstreamGateway)
	mockGateway.On("RelayMessage", atende.SendMessageInput{
		To:      "5511987654321",
		Message: "oi",
	}).Return(&atende.ProxyResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"success":true,"messageId":"msg-1"}`),
	}, nil)

	handler := NewSendHandler(mockGateway)

	w := postJSON(t, handler.Handle, "/send", usecase.SendMessageInput{
		To:      "5511987654321",
		Message: "oi",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"messageId":"msg-1"}`, w.Body.String())
}
