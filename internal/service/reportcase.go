package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/repository"
)

var (
	ErrReportcaseNotFound    = repository.ErrReportcaseNotFound
	ErrReferencedRowNotFound = repository.ErrReferencedRowNotFound
	ErrNotReportOwner        = errors.New("user is not the owner of the reportcase")
)

type ReportcaseRepository interface {
	FindAll(ctx context.Context) ([]domain.Reportcase, error)
	FindByID(ctx context.Context, id uint) (domain.Reportcase, error)
	Create(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error)
	Update(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error)
	Delete(ctx context.Context, id uint) error
}

type ReportcaseService struct {
	repo ReportcaseRepository
}

func NewReportcaseService(repo ReportcaseRepository) *ReportcaseService {
	return &ReportcaseService{
		repo: repo,
	}
}

func (s *ReportcaseService) ListReportcases(ctx context.Context) ([]domain.Reportcase, error) {
	reportcases, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return reportcases, nil
}

func (s *ReportcaseService) GetReportcase(ctx context.Context, id uint) (domain.Reportcase, error) {
	reportcase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reportcase{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return reportcase, nil
}

// CreateReportcase persists a new reportcase owned by userID.
func (s *ReportcaseService) CreateReportcase(ctx context.Context, reportcase domain.Reportcase, userID uint) (domain.Reportcase, error) {
	reportcase.UserID = userID

	created, err := s.repo.Create(ctx, reportcase)
	if err != nil {
		return domain.Reportcase{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateReportcase overwrites the six mutable fields of the record. Only the
// user who created the record may update it, whatever token abilities the
// caller holds.
func (s *ReportcaseService) UpdateReportcase(ctx context.Context, id uint, input domain.Reportcase, userID uint) (domain.Reportcase, error) {
	reportcase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Reportcase{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if reportcase.UserID != userID {
		return domain.Reportcase{}, ErrNotReportOwner
	}

	reportcase.TotalConfirmed = input.TotalConfirmed
	reportcase.TotalDeaths = input.TotalDeaths
	reportcase.TotalActive = input.TotalActive
	reportcase.DateInfo = input.DateInfo
	reportcase.DiseaseID = input.DiseaseID
	reportcase.LocalizationID = input.LocalizationID

	updated, err := s.repo.Update(ctx, reportcase)
	if err != nil {
		return domain.Reportcase{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ReportcaseService) DeleteReportcase(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
