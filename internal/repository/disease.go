package repository

import (
	"context"
	"fmt"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/repository/dao"
)

var ErrDiseaseNotFound = dao.ErrDiseaseNotFound

type DiseaseDAO interface {
	FindAll(ctx context.Context) ([]dao.Disease, error)
	FindByID(ctx context.Context, id uint) (dao.Disease, error)
	Insert(ctx context.Context, disease dao.Disease) (dao.Disease, error)
	Update(ctx context.Context, disease dao.Disease) (dao.Disease, error)
	Delete(ctx context.Context, id uint) error
}

type DiseaseRepository struct {
	dao DiseaseDAO
}

func NewDiseaseRepository(dao DiseaseDAO) *DiseaseRepository {
	return &DiseaseRepository{
		dao: dao,
	}
}

func (r *DiseaseRepository) domainToDao(d domain.Disease) dao.Disease {
	return dao.Disease{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *DiseaseRepository) daoToDomain(d dao.Disease) domain.Disease {
	return domain.Disease{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *DiseaseRepository) FindAll(ctx context.Context) ([]domain.Disease, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	diseases := make([]domain.Disease, len(found))
	for i, d := range found {
		diseases[i] = r.daoToDomain(d)
	}

	return diseases, nil
}

func (r *DiseaseRepository) FindByID(ctx context.Context, id uint) (domain.Disease, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Disease{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DiseaseRepository) Create(ctx context.Context, disease domain.Disease) (domain.Disease, error) {
	created, err := r.dao.Insert(ctx, dao.Disease{
		Name: disease.Name,
	})
	if err != nil {
		return domain.Disease{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DiseaseRepository) Update(ctx context.Context, disease domain.Disease) (domain.Disease, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(disease))
	if err != nil {
		return domain.Disease{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *DiseaseRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
