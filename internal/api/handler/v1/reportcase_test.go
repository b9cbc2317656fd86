package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/service"
)

type stubReportcaseService struct {
	ListReportcasesFunc  func(ctx context.Context) ([]domain.Reportcase, error)
	GetReportcaseFunc    func(ctx context.Context, id uint) (domain.Reportcase, error)
	CreateReportcaseFunc func(ctx context.Context, reportcase domain.Reportcase, userID uint) (domain.Reportcase, error)
	UpdateReportcaseFunc func(ctx context.Context, id uint, input domain.Reportcase, userID uint) (domain.Reportcase, error)
	DeleteReportcaseFunc func(ctx context.Context, id uint) error

	calls int
}

func (s *stubReportcaseService) ListReportcases(ctx context.Context) ([]domain.Reportcase, error) {
	s.calls++
	return s.ListReportcasesFunc(ctx)
}

func (s *stubReportcaseService) GetReportcase(ctx context.Context, id uint) (domain.Reportcase, error) {
	s.calls++
	return s.GetReportcaseFunc(ctx, id)
}

func (s *stubReportcaseService) CreateReportcase(ctx context.Context, reportcase domain.Reportcase, userID uint) (domain.Reportcase, error) {
	s.calls++
	return s.CreateReportcaseFunc(ctx, reportcase, userID)
}

func (s *stubReportcaseService) UpdateReportcase(ctx context.Context, id uint, input domain.Reportcase, userID uint) (domain.Reportcase, error) {
	s.calls++
	return s.UpdateReportcaseFunc(ctx, id, input, userID)
}

func (s *stubReportcaseService) DeleteReportcase(ctx context.Context, id uint) error {
	s.calls++
	return s.DeleteReportcaseFunc(ctx, id)
}

func mountReportcaseRoutes(svc *stubReportcaseService) func(router *gin.Engine) {
	return func(router *gin.Engine) {
		h := NewReportcaseHandler(svc)
		router.GET("/api/reportcases", h.HandleListReportcases)
		router.POST("/api/reportcases", h.HandleCreateReportcase)
		router.GET("/api/reportcases/:id", h.HandleGetReportcase)
		router.PUT("/api/reportcases/:id", h.HandleUpdateReportcase)
		router.DELETE("/api/reportcases/:id", h.HandleDeleteReportcase)
	}
}

const validReportcaseJSON = `{
	"totalConfirmed": 1500,
	"totalDeaths": 30,
	"totalActive": 200,
	"dateInfo": "2021-03-15",
	"diseaseId": 1,
	"localizationId": 12
}`

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()

	date, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}

	return date
}

func TestHandleListReportcases(t *testing.T) {
	svc := &stubReportcaseService{
		ListReportcasesFunc: func(ctx context.Context) ([]domain.Reportcase, error) {
			return []domain.Reportcase{
				{
					ID:             1,
					TotalConfirmed: 1500,
					TotalDeaths:    30,
					TotalActive:    200,
					DateInfo:       mustDate(t, "2021-03-15"),
					DiseaseID:      1,
					LocalizationID: 12,
					UserID:         42,
				},
			}, nil
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeReportcaseView), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/reportcases", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{
		"Id": 1,
		"TotalConfirmed": 1500,
		"TotalDeaths": 30,
		"TotalActive": 200,
		"DateInfo": "2021-03-15",
		"DiseaseId": 1,
		"LocalizationId": 12
	}]`, resp.Body.String())
}

func TestHandleListReportcases_MissingScope(t *testing.T) {
	svc := &stubReportcaseService{}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseView), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/reportcases", "")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.JSONEq(t, `{"message":"L'utilisateur n'a pas la permission de créer un cas reporté."}`, resp.Body.String())
	assert.Zero(t, svc.calls)
}

func TestHandleCreateReportcase(t *testing.T) {
	var gotUserID uint
	svc := &stubReportcaseService{
		CreateReportcaseFunc: func(ctx context.Context, reportcase domain.Reportcase, userID uint) (domain.Reportcase, error) {
			gotUserID = userID
			reportcase.ID = 1
			return reportcase, nil
		},
	}
	router := setupRouter(claimsWith(42, domain.ScopeReportcaseCreate), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodPost, "/api/reportcases", validReportcaseJSON)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"message":"Cas reporté créé avec succès."}`, resp.Body.String())
	assert.Equal(t, uint(42), gotUserID)
}

func TestHandleCreateReportcase_UnknownForeignKey(t *testing.T) {
	svc := &stubReportcaseService{
		CreateReportcaseFunc: func(ctx context.Context, reportcase domain.Reportcase, userID uint) (domain.Reportcase, error) {
			return domain.Reportcase{}, service.ErrReferencedRowNotFound
		},
	}
	router := setupRouter(claimsWith(42, domain.ScopeReportcaseCreate), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodPost, "/api/reportcases", validReportcaseJSON)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandleCreateReportcase_InvalidBody(t *testing.T) {
	svc := &stubReportcaseService{}
	router := setupRouter(claimsWith(42, domain.ScopeReportcaseCreate), mountReportcaseRoutes(svc))

	tests := []struct {
		name string
		body string
	}{
		{"negative confirmed", `{"totalConfirmed":-1,"totalDeaths":0,"totalActive":0,"dateInfo":"2021-03-15","diseaseId":1,"localizationId":12}`},
		{"malformed date", `{"totalConfirmed":1,"totalDeaths":0,"totalActive":0,"dateInfo":"15/03/2021","diseaseId":1,"localizationId":12}`},
		{"missing disease id", `{"totalConfirmed":1,"totalDeaths":0,"totalActive":0,"dateInfo":"2021-03-15","localizationId":12}`},
		{"not json", `not json`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(router, http.MethodPost, "/api/reportcases", tc.body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
		})
	}

	assert.Zero(t, svc.calls)
}

func TestHandleGetReportcase_NotFound(t *testing.T) {
	svc := &stubReportcaseService{
		GetReportcaseFunc: func(ctx context.Context, id uint) (domain.Reportcase, error) {
			return domain.Reportcase{}, service.ErrReportcaseNotFound
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeReportcaseView), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/reportcases/99", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleUpdateReportcase(t *testing.T) {
	svc := &stubReportcaseService{
		UpdateReportcaseFunc: func(ctx context.Context, id uint, input domain.Reportcase, userID uint) (domain.Reportcase, error) {
			input.ID = id
			input.UserID = userID
			return input, nil
		},
	}
	router := setupRouter(claimsWith(42, domain.ScopeReportcaseUpdate), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodPut, "/api/reportcases/1", validReportcaseJSON)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Cas reporté mis à jour avec succès."}`, resp.Body.String())
}

func TestHandleUpdateReportcase_NotOwner(t *testing.T) {
	svc := &stubReportcaseService{
		UpdateReportcaseFunc: func(ctx context.Context, id uint, input domain.Reportcase, userID uint) (domain.Reportcase, error) {
			return domain.Reportcase{}, service.ErrNotReportOwner
		},
	}
	router := setupRouter(claimsWith(99, domain.ScopeReportcaseUpdate), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodPut, "/api/reportcases/1", validReportcaseJSON)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.JSONEq(t, `{"message":"L'utilisateur n'a pas la permission de créer un cas reporté."}`, resp.Body.String())
}

func TestHandleUpdateReportcase_NotFound(t *testing.T) {
	svc := &stubReportcaseService{
		UpdateReportcaseFunc: func(ctx context.Context, id uint, input domain.Reportcase, userID uint) (domain.Reportcase, error) {
			return domain.Reportcase{}, service.ErrReportcaseNotFound
		},
	}
	router := setupRouter(claimsWith(42, domain.ScopeReportcaseUpdate), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodPut, "/api/reportcases/99", validReportcaseJSON)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleDeleteReportcase_NotFound(t *testing.T) {
	svc := &stubReportcaseService{
		DeleteReportcaseFunc: func(ctx context.Context, id uint) error {
			return service.ErrReportcaseNotFound
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeReportcaseDelete), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodDelete, "/api/reportcases/99", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleDeleteReportcase(t *testing.T) {
	svc := &stubReportcaseService{
		DeleteReportcaseFunc: func(ctx context.Context, id uint) error {
			return nil
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeReportcaseDelete), mountReportcaseRoutes(svc))

	resp := performRequest(router, http.MethodDelete, "/api/reportcases/1", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Cas reporté supprimé avec succès."}`, resp.Body.String())
}
