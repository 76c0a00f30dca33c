package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zapatende/landing-api/internal/entity"
)

type MockClickWriter struct {
	mock.Mock
}

func (m *MockClickWriter) IncrementClickCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClickWriter) InsertClick(ctx context.Context, click *entity.LinkClick) error {
	args := m.Called(ctx, click)
	return args.Error(0)
}

func TestProcessClickWritesCounterAndEvent(t *testing.T) {
	mockWriter := new(MockClickWriter)
	mockWriter.On("IncrementClickCount", mock.Anything, "link-1").Return(nil)
	mockWriter.On("InsertClick", mock.Anything, mock.Anything).Return(nil)

	w := NewWorker(nil, mockWriter)

	clickedAt := time.Now()
	err := w.processClick(context.Background(), ClickPayload{
		LinkID:    "link-1",
		UserAgent: "Mozilla/5.0",
		IPAddress: "201.10.0.1",
		ClickedAt: clickedAt,
	})

	assert.NoError(t, err)
	mockWriter.AssertExpectations(t)

	click := mockWriter.Calls[1].Arguments.Get(1).(*entity.LinkClick)
	assert.Equal(t, "link-1", click.LinkID)
	assert.Equal(t, "Mozilla/5.0", click.UserAgent)
	assert.Equal(t, clickedAt, click.CreatedAt)
}

func TestProcessClickPropagatesWriteFailure(t *testing.T) {
	mockWriter := new(MockClickWriter)
	mockWriter.On("IncrementClickCount", mock.Anything, "link-1").Return(errors.New("db down"))

	w := NewWorker(nil, mockWriter)

	err := w.processClick(context.Background(), ClickPayload{LinkID: "link-1"})

	assert.Error(t, err)
	mockWriter.AssertNotCalled(t, "InsertClick", mock.Anything, mock.Anything)
}
