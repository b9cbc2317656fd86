package repository

import (
	"context"
	"fmt"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/repository/dao"
)

var (
	ErrReportcaseNotFound    = dao.ErrReportcaseNotFound
	ErrReferencedRowNotFound = dao.ErrReferencedRowNotFound
)

type ReportcaseDAO interface {
	FindAll(ctx context.Context) ([]dao.Reportcase, error)
	FindByID(ctx context.Context, id uint) (dao.Reportcase, error)
	Insert(ctx context.Context, reportcase dao.Reportcase) (dao.Reportcase, error)
	Update(ctx context.Context, reportcase dao.Reportcase) (dao.Reportcase, error)
	Delete(ctx context.Context, id uint) error
}

type ReportcaseRepository struct {
	dao ReportcaseDAO
}

func NewReportcaseRepository(dao ReportcaseDAO) *ReportcaseRepository {
	return &ReportcaseRepository{
		dao: dao,
	}
}

func (r *ReportcaseRepository) domainToDao(rc domain.Reportcase) dao.Reportcase {
	return dao.Reportcase{
		ID:             rc.ID,
		TotalConfirmed: rc.TotalConfirmed,
		TotalDeaths:    rc.TotalDeaths,
		TotalActive:    rc.TotalActive,
		DateInfo:       rc.DateInfo.Time,
		DiseaseID:      rc.DiseaseID,
		LocalizationID: rc.LocalizationID,
		UserID:         rc.UserID,
		CreatedAt:      rc.CreatedAt,
		UpdatedAt:      rc.UpdatedAt,
	}
}

func (r *ReportcaseRepository) daoToDomain(rc dao.Reportcase) domain.Reportcase {
	return domain.Reportcase{
		ID:             rc.ID,
		TotalConfirmed: rc.TotalConfirmed,
		TotalDeaths:    rc.TotalDeaths,
		TotalActive:    rc.TotalActive,
		DateInfo:       domain.NewDate(rc.DateInfo),
		DiseaseID:      rc.DiseaseID,
		LocalizationID: rc.LocalizationID,
		UserID:         rc.UserID,
		CreatedAt:      rc.CreatedAt,
		UpdatedAt:      rc.UpdatedAt,
	}
}

func (r *ReportcaseRepository) FindAll(ctx context.Context) ([]domain.Reportcase, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	reportcases := make([]domain.Reportcase, len(found))
	for i, rc := range found {
		reportcases[i] = r.daoToDomain(rc)
	}

	return reportcases, nil
}

func (r *ReportcaseRepository) FindByID(ctx context.Context, id uint) (domain.Reportcase, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Reportcase{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ReportcaseRepository) Create(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error) {
	created, err := r.dao.Insert(ctx, dao.Reportcase{
		TotalConfirmed: reportcase.TotalConfirmed,
		TotalDeaths:    reportcase.TotalDeaths,
		TotalActive:    reportcase.TotalActive,
		DateInfo:       reportcase.DateInfo.Time,
		DiseaseID:      reportcase.DiseaseID,
		LocalizationID: reportcase.LocalizationID,
		UserID:         reportcase.UserID,
	})
	if err != nil {
		return domain.Reportcase{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ReportcaseRepository) Update(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(reportcase))
	if err != nil {
		return domain.Reportcase{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ReportcaseRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}
