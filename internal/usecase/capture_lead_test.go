package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zapatende/landing-api/internal/entity"
	"github.com/zapatende/landing-api/internal/infra/database"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpsertByEmail(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateEmailSentAt(ctx context.Context, id string, sentAt time.Time) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendConfirmation(to, name, company string) error {
	args := m.Called(to, name, company)
	return args.Error(0)
}

func (m *MockEmailService) SendSlideDeck(to, name, deckLink string) error {
	args := m.Called(to, name, deckLink)
	return args.Error(0)
}

type MockOwnerNotifier struct {
	mock.Mock
}

func (m *MockOwnerNotifier) SendMessage(to, message string) error {
	args := m.Called(to, message)
	return args.Error(0)
}

func TestCaptureLeadSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(mockRepo, nil, nil, "")

	output, err := uc.Execute(context.Background(), CaptureLeadInput{
		Name:   "João Silva",
		Email:  "Joao@Example.COM",
		Source: "Hero Landing Page",
	})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.True(t, output.IsNewLead)
	assert.NotEmpty(t, output.LeadID)

	// Email normalizado para lowercase e source para o enum
	lead := mockRepo.Calls[0].Arguments.Get(1).(*entity.Lead)
	assert.Equal(t, "joao@example.com", lead.Email)
	assert.Equal(t, entity.SourceHeroForm, lead.Source)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
	assert.Equal(t, entity.ScoreLeadForm, lead.LeadScore)
}

func TestCaptureLeadDuplicateIsNotAnError(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(database.ErrDuplicateEmail)

	uc := NewCaptureLeadUseCase(mockRepo, nil, nil, "")

	output, err := uc.Execute(context.Background(), CaptureLeadInput{
		Name:  "João",
		Email: "joao@example.com",
	})

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.False(t, output.IsNewLead)
}

func TestCaptureLeadStorageFailureStillSucceeds(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewCaptureLeadUseCase(mockRepo, nil, nil, "")

	output, err := uc.Execute(context.Background(), CaptureLeadInput{
		Name:  "João",
		Email: "joao@example.com",
	})

	assert.NoError(t, err)
	assert.True(t, output.Success)
}

func TestCaptureLeadValidationError(t *testing.T) {
	uc := NewCaptureLeadUseCase(new(MockLeadRepository), nil, nil, "")

	_, err := uc.Execute(context.Background(), CaptureLeadInput{Name: "João"})

	assert.Error(t, err)
	derr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, "MISSING_EMAIL", derr.Code)
}

// notify é testado direto (síncrono) para não depender da goroutine do Execute.
func TestNotifySendsEmailThenOwnerAlert(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpdateEmailSentAt", mock.Anything, "lead-1", mock.Anything).Return(nil)

	mockEmail := new(MockEmailService)
	mockEmail.On("SendConfirmation", "joao@example.com", "João", "").Return(nil)

	mockNotifier := new(MockOwnerNotifier)
	mockNotifier.On("SendMessage", "5511987654321", mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(mockRepo, mockEmail, mockNotifier, "5511987654321")

	uc.notify(&entity.Lead{
		ID:     "lead-1",
		Name:   "João",
		Email:  "joao@example.com",
		Source: entity.SourceHeroForm,
	})

	mockEmail.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
	mockRepo.AssertCalled(t, "UpdateEmailSentAt", mock.Anything, "lead-1", mock.Anything)
}

func TestNotifyEmailFailureDoesNotBlockOwnerAlert(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	mockEmail := new(MockEmailService)
	mockEmail.On("SendConfirmation", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	mockNotifier := new(MockOwnerNotifier)
	mockNotifier.On("SendMessage", mock.Anything, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(mockRepo, mockEmail, mockNotifier, "5511987654321")

	uc.notify(&entity.Lead{ID: "lead-2", Name: "Maria", Email: "maria@example.com"})

	// email falhou: não marca email_sent_at, mas o alerta ainda sai
	mockRepo.AssertNotCalled(t, "UpdateEmailSentAt", mock.Anything, mock.Anything, mock.Anything)
	mockNotifier.AssertExpectations(t)
}

func TestRequestSlideDeckUpsertsAndSucceeds(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("UpsertByEmail", mock.Anything, mock.Anything).Return(nil)

	uc := NewRequestSlideDeckUseCase(mockRepo, nil, "https://example.com/deck.pdf")

	output, err := uc.Execute(context.Background(), SlideDeckInput{Email: "joao@example.com"})

	assert.NoError(t, err)
	assert.True(t, output.Success)

	lead := mockRepo.Calls[0].Arguments.Get(1).(*entity.Lead)
	assert.Equal(t, entity.ScoreSlideDeck, lead.LeadScore)
}

func TestRequestSlideDeckMissingEmail(t *testing.T) {
	uc := NewRequestSlideDeckUseCase(new(MockLeadRepository), nil, "")

	_, err := uc.Execute(context.Background(), SlideDeckInput{})

	derr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, "MISSING_EMAIL", derr.Code)
}
