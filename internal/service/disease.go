package service

import (
	"context"
	"fmt"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/repository"
)

var ErrDiseaseNotFound = repository.ErrDiseaseNotFound

type DiseaseRepository interface {
	FindAll(ctx context.Context) ([]domain.Disease, error)
	FindByID(ctx context.Context, id uint) (domain.Disease, error)
	Create(ctx context.Context, disease domain.Disease) (domain.Disease, error)
	Update(ctx context.Context, disease domain.Disease) (domain.Disease, error)
	Delete(ctx context.Context, id uint) error
}

type DiseaseService struct {
	repo DiseaseRepository
}

func NewDiseaseService(repo DiseaseRepository) *DiseaseService {
	return &DiseaseService{
		repo: repo,
	}
}

func (s *DiseaseService) ListDiseases(ctx context.Context) ([]domain.Disease, error) {
	diseases, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return diseases, nil
}

func (s *DiseaseService) GetDisease(ctx context.Context, id uint) (domain.Disease, error) {
	disease, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Disease{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return disease, nil
}

func (s *DiseaseService) CreateDisease(ctx context.Context, disease domain.Disease) (domain.Disease, error) {
	created, err := s.repo.Create(ctx, disease)
	if err != nil {
		return domain.Disease{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *DiseaseService) UpdateDisease(ctx context.Context, id uint, name string) (domain.Disease, error) {
	disease, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Disease{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	disease.Name = name

	updated, err := s.repo.Update(ctx, disease)
	if err != nil {
		return domain.Disease{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DiseaseService) DeleteDisease(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
