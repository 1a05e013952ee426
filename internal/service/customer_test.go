package service

import (
	"context"
	"testing"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/avdeyev/TableBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_Create_Success(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	clock := mocks.NewMockClock(t)
	svc := NewCustomerService(repo, clock)

	clock.EXPECT().Now().Return(testNow)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	chatID := int64(123456)
	customer, err := svc.Create(context.Background(), domain.CreateCustomerInput{
		Username:       "alice",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", customer.Username)
	assert.Equal(t, &chatID, customer.TelegramChatID)
	assert.NotEmpty(t, customer.ID)
}

func TestCustomerService_Create_EmptyUsername(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	clock := mocks.NewMockClock(t)
	svc := NewCustomerService(repo, clock)

	_, err := svc.Create(context.Background(), domain.CreateCustomerInput{Username: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomerService_Create_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	clock := mocks.NewMockClock(t)
	svc := NewCustomerService(repo, clock)

	clock.EXPECT().Now().Return(testNow)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Create(context.Background(), domain.CreateCustomerInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCustomerService_List(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	clock := mocks.NewMockClock(t)
	svc := NewCustomerService(repo, clock)

	customers := []*domain.Customer{{ID: "c1", Username: "alice"}}
	repo.EXPECT().List(mock.Anything).Return(customers, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, customers, got)
}
