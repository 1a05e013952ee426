package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/avdeyev/TableBooker/internal/domain"
	"github.com/avdeyev/TableBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type TableService struct {
	repo   ports.TableRepo
	clock  ports.Clock
	logger logger.Logger
}

func NewTableService(repo ports.TableRepo, clock ports.Clock, logger logger.Logger) *TableService {
	return &TableService{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func validateTableInput(input domain.TableInput) error {
	if input.Number < 1 {
		return fmt.Errorf("%w: table number must be at least 1", domain.ErrValidation)
	}
	if input.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}
	return nil
}

func (s *TableService) Create(ctx context.Context, input domain.TableInput) (*domain.Table, error) {
	if err := validateTableInput(input); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	table := &domain.Table{
		ID:        uuid.New().String(),
		Number:    input.Number,
		Capacity:  input.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, table); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	s.logger.Info("table created",
		logger.Int("number", table.Number),
		logger.Int("capacity", table.Capacity),
	)

	return table, nil
}

func (s *TableService) Update(ctx context.Context, id string, input domain.TableInput) (*domain.Table, error) {
	if err := validateTableInput(input); err != nil {
		return nil, err
	}

	table, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get table: %w", err)
	}

	table.Number = input.Number
	table.Capacity = input.Capacity
	table.UpdatedAt = s.clock.Now().UTC()

	if err = s.repo.Update(ctx, table); err != nil {
		return nil, fmt.Errorf("update table: %w", err)
	}

	s.logger.Info("table updated",
		logger.Int("number", table.Number),
		logger.Int("capacity", table.Capacity),
	)

	return table, nil
}

func (s *TableService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete table: %w", err)
	}

	s.logger.Info("table deleted", logger.String("table_id", id))

	return nil
}

func (s *TableService) GetByID(ctx context.Context, id string) (*domain.Table, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TableService) List(ctx context.Context) ([]*domain.Table, error) {
	return s.repo.List(ctx)
}
