package unit

import (
	"context"

	"github.com/gabriel-moura/kpiflow-lambda/internal/config"
	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, dto CreateUnitDTO) (*Unit, error)
	List(ctx context.Context) ([]Unit, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateUnitDTO) (*Unit, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, dto CreateUnitDTO) (*Unit, error) {
	log := config.WithContext(ctx)

	u := Unit{
		Name:   dto.Name,
		Symbol: dto.Symbol,
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create unit")
		return nil, err
	}
	return &u, nil
}

func (s *service) List(ctx context.Context) ([]Unit, error) {
	return s.repo.FindAll()
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateUnitDTO) (*Unit, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Symbol != nil {
		u.Symbol = *dto.Symbol
	}

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update unit")
		return nil, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
