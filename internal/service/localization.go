package service

import (
	"context"
	"fmt"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/repository"
)

var ErrLocalizationNotFound = repository.ErrLocalizationNotFound

type LocalizationRepository interface {
	FindAll(ctx context.Context) ([]domain.Localization, error)
	FindByID(ctx context.Context, id uint) (domain.Localization, error)
	Create(ctx context.Context, localization domain.Localization) (domain.Localization, error)
	Update(ctx context.Context, localization domain.Localization) (domain.Localization, error)
	Delete(ctx context.Context, id uint) error
}

type LocalizationService struct {
	repo LocalizationRepository
}

func NewLocalizationService(repo LocalizationRepository) *LocalizationService {
	return &LocalizationService{
		repo: repo,
	}
}

func (s *LocalizationService) ListLocalizations(ctx context.Context) ([]domain.Localization, error) {
	localizations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return localizations, nil
}

func (s *LocalizationService) GetLocalization(ctx context.Context, id uint) (domain.Localization, error) {
	localization, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Localization{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return localization, nil
}

func (s *LocalizationService) CreateLocalization(ctx context.Context, localization domain.Localization) (domain.Localization, error) {
	created, err := s.repo.Create(ctx, localization)
	if err != nil {
		return domain.Localization{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *LocalizationService) UpdateLocalization(ctx context.Context, id uint, country, continent string) (domain.Localization, error) {
	localization, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Localization{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	localization.Country = country
	localization.Continent = continent

	updated, err := s.repo.Update(ctx, localization)
	if err != nil {
		return domain.Localization{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *LocalizationService) DeleteLocalization(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
