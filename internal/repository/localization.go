package repository

import (
	"context"
	"fmt"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/repository/dao"
)

var ErrLocalizationNotFound = dao.ErrLocalizationNotFound

type LocalizationDAO interface {
	FindAll(ctx context.Context) ([]dao.Localization, error)
	FindByID(ctx context.Context, id uint) (dao.Localization, error)
	Insert(ctx context.Context, localization dao.Localization) (dao.Localization, error)
	Update(ctx context.Context, localization dao.Localization) (dao.Localization, error)
	Delete(ctx context.Context, id uint) error
}

type LocalizationRepository struct {
	dao LocalizationDAO
}

func NewLocalizationRepository(dao LocalizationDAO) *LocalizationRepository {
	return &LocalizationRepository{
		dao: dao,
	}
}

func (r *LocalizationRepository) domainToDao(l domain.Localization) dao.Localization {
	return dao.Localization{
		ID:        l.ID,
		Country:   l.Country,
		Continent: l.Continent,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (r *LocalizationRepository) daoToDomain(l dao.Localization) domain.Localization {
	return domain.Localization{
		ID:        l.ID,
		Country:   l.Country,
		Continent: l.Continent,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (r *LocalizationRepository) FindAll(ctx context.Context) ([]domain.Localization, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	localizations := make([]domain.Localization, len(found))
	for i, l := range found {
		localizations[i] = r.daoToDomain(l)
	}

	return localizations, nil
}

func (r *LocalizationRepository) FindByID(ctx context.Context, id uint) (domain.Localization, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Localization{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *LocalizationRepository) Create(ctx context.Context, localization domain.Localization) (domain.Localization, error) {
	created, err := r.dao.Insert(ctx, dao.Localization{
		Country:   localization.Country,
		Continent: localization.Continent,
	})
	if err != nil {
		return domain.Localization{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *LocalizationRepository) Update(ctx context.Context, localization domain.Localization) (domain.Localization, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(localization))
	if err != nil {
		return domain.Localization{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *LocalizationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
