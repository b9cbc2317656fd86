package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/episurv/reportcase-api/internal/domain"
)

type stubReportcaseRepository struct {
	FindAllFunc  func(ctx context.Context) ([]domain.Reportcase, error)
	FindByIDFunc func(ctx context.Context, id uint) (domain.Reportcase, error)
	CreateFunc   func(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error)
	UpdateFunc   func(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error)
	DeleteFunc   func(ctx context.Context, id uint) error

	updateCalls int
}

func (s *stubReportcaseRepository) FindAll(ctx context.Context) ([]domain.Reportcase, error) {
	return s.FindAllFunc(ctx)
}

func (s *stubReportcaseRepository) FindByID(ctx context.Context, id uint) (domain.Reportcase, error) {
	return s.FindByIDFunc(ctx, id)
}

func (s *stubReportcaseRepository) Create(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error) {
	return s.CreateFunc(ctx, reportcase)
}

func (s *stubReportcaseRepository) Update(ctx context.Context, reportcase domain.Reportcase) (domain.Reportcase, error) {
	s.updateCalls++
	return s.UpdateFunc(ctx, reportcase)
}

func (s *stubReportcaseRepository) Delete(ctx context.Context, id uint) error {
	return s.DeleteFunc(ctx, id)
}

func testDate(t *testing.T, s string) domain.Date {
	t.Helper()

	date, err := domain.ParseDate(s)
	require.NoError(t, err)

	return date
}

func TestReportcaseService_CreateReportcase_SetsOwner(t *testing.T) {
	var created domain.Reportcase
	repo := &stubReportcaseRepository{
		CreateFunc: func(_ context.Context, reportcase domain.Reportcase) (domain.Reportcase, error) {
			created = reportcase
			reportcase.ID = 1
			return reportcase, nil
		},
	}
	svc := NewReportcaseService(repo)

	got, err := svc.CreateReportcase(context.Background(), domain.Reportcase{
		TotalConfirmed: 10,
		DateInfo:       testDate(t, "2021-03-15"),
		DiseaseID:      1,
		LocalizationID: 2,
	}, 42)

	require.NoError(t, err)
	assert.Equal(t, uint(42), created.UserID)
	assert.Equal(t, uint(1), got.ID)
}

func TestReportcaseService_UpdateReportcase(t *testing.T) {
	existing := domain.Reportcase{
		ID:             5,
		TotalConfirmed: 10,
		TotalDeaths:    1,
		TotalActive:    2,
		DateInfo:       testDate(t, "2021-03-15"),
		DiseaseID:      1,
		LocalizationID: 2,
		UserID:         42,
		CreatedAt:      time.Now(),
	}
	repo := &stubReportcaseRepository{
		FindByIDFunc: func(_ context.Context, id uint) (domain.Reportcase, error) {
			return existing, nil
		},
		UpdateFunc: func(_ context.Context, reportcase domain.Reportcase) (domain.Reportcase, error) {
			return reportcase, nil
		},
	}
	svc := NewReportcaseService(repo)

	input := domain.Reportcase{
		TotalConfirmed: 20,
		TotalDeaths:    3,
		TotalActive:    4,
		DateInfo:       testDate(t, "2021-03-16"),
		DiseaseID:      2,
		LocalizationID: 7,
	}

	got, err := svc.UpdateReportcase(context.Background(), 5, input, 42)

	require.NoError(t, err)
	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, uint(42), got.UserID)
	assert.Equal(t, 20, got.TotalConfirmed)
	assert.Equal(t, 3, got.TotalDeaths)
	assert.Equal(t, 4, got.TotalActive)
	assert.Equal(t, "2021-03-16", got.DateInfo.String())
	assert.Equal(t, uint(2), got.DiseaseID)
	assert.Equal(t, uint(7), got.LocalizationID)
}

func TestReportcaseService_UpdateReportcase_NotOwner(t *testing.T) {
	repo := &stubReportcaseRepository{
		FindByIDFunc: func(_ context.Context, id uint) (domain.Reportcase, error) {
			return domain.Reportcase{ID: 5, UserID: 42}, nil
		},
		UpdateFunc: func(_ context.Context, reportcase domain.Reportcase) (domain.Reportcase, error) {
			return reportcase, nil
		},
	}
	svc := NewReportcaseService(repo)

	_, err := svc.UpdateReportcase(context.Background(), 5, domain.Reportcase{}, 99)

	assert.ErrorIs(t, err, ErrNotReportOwner)
	assert.Zero(t, repo.updateCalls)
}

func TestReportcaseService_UpdateReportcase_NotFound(t *testing.T) {
	repo := &stubReportcaseRepository{
		FindByIDFunc: func(_ context.Context, id uint) (domain.Reportcase, error) {
			return domain.Reportcase{}, ErrReportcaseNotFound
		},
	}
	svc := NewReportcaseService(repo)

	_, err := svc.UpdateReportcase(context.Background(), 404, domain.Reportcase{}, 42)

	assert.ErrorIs(t, err, ErrReportcaseNotFound)
}

func TestReportcaseService_GetReportcase_WrapsError(t *testing.T) {
	repo := &stubReportcaseRepository{
		FindByIDFunc: func(_ context.Context, id uint) (domain.Reportcase, error) {
			return domain.Reportcase{}, errors.New("connection refused")
		},
	}
	svc := NewReportcaseService(repo)

	_, err := svc.GetReportcase(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "s.repo.FindByID")
}
