package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/avdeyev/TableBooker/internal/service/ports"
)

type CustomerService struct {
	repo  ports.CustomerRepo
	clock ports.Clock
}

func NewCustomerService(repo ports.CustomerRepo, clock ports.Clock) *CustomerService {
	return &CustomerService{repo: repo, clock: clock}
}

func (s *CustomerService) Create(ctx context.Context, input domain.CreateCustomerInput) (*domain.Customer, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	customer := &domain.Customer{
		ID:             uuid.New().String(),
		Username:       input.Username,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.clock.Now().UTC(),
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}
