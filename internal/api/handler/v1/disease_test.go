package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/service"
)

type stubDiseaseService struct {
	ListDiseasesFunc  func(ctx context.Context) ([]domain.Disease, error)
	GetDiseaseFunc    func(ctx context.Context, id uint) (domain.Disease, error)
	CreateDiseaseFunc func(ctx context.Context, disease domain.Disease) (domain.Disease, error)
	UpdateDiseaseFunc func(ctx context.Context, id uint, name string) (domain.Disease, error)
	DeleteDiseaseFunc func(ctx context.Context, id uint) error

	calls int
}

func (s *stubDiseaseService) ListDiseases(ctx context.Context) ([]domain.Disease, error) {
	s.calls++
	return s.ListDiseasesFunc(ctx)
}

func (s *stubDiseaseService) GetDisease(ctx context.Context, id uint) (domain.Disease, error) {
	s.calls++
	return s.GetDiseaseFunc(ctx, id)
}

func (s *stubDiseaseService) CreateDisease(ctx context.Context, disease domain.Disease) (domain.Disease, error) {
	s.calls++
	return s.CreateDiseaseFunc(ctx, disease)
}

func (s *stubDiseaseService) UpdateDisease(ctx context.Context, id uint, name string) (domain.Disease, error) {
	s.calls++
	return s.UpdateDiseaseFunc(ctx, id, name)
}

func (s *stubDiseaseService) DeleteDisease(ctx context.Context, id uint) error {
	s.calls++
	return s.DeleteDiseaseFunc(ctx, id)
}

func mountDiseaseRoutes(svc *stubDiseaseService) func(router *gin.Engine) {
	return func(router *gin.Engine) {
		h := NewDiseaseHandler(svc)
		router.GET("/api/diseases", h.HandleListDiseases)
		router.POST("/api/diseases", h.HandleCreateDisease)
		router.GET("/api/diseases/:id", h.HandleGetDisease)
		router.PUT("/api/diseases/:id", h.HandleUpdateDisease)
		router.DELETE("/api/diseases/:id", h.HandleDeleteDisease)
	}
}

func TestHandleListDiseases(t *testing.T) {
	svc := &stubDiseaseService{
		ListDiseasesFunc: func(ctx context.Context) ([]domain.Disease, error) {
			return []domain.Disease{
				{ID: 1, Name: "Coronavirus"},
				{ID: 2, Name: "Monkeypox"},
			}, nil
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseView), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/diseases", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[{"Id":1,"Name":"Coronavirus"},{"Id":2,"Name":"Monkeypox"}]`, resp.Body.String())
}

func TestHandleListDiseases_MissingScope(t *testing.T) {
	svc := &stubDiseaseService{}
	router := setupRouter(claimsWith(1, domain.ScopeLocalizationView), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/diseases", "")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.JSONEq(t, `{"message":"L'utilisateur n'a pas la permission de créer une maladie."}`, resp.Body.String())
	assert.Zero(t, svc.calls)
}

func TestHandleListDiseases_ServiceError(t *testing.T) {
	svc := &stubDiseaseService{
		ListDiseasesFunc: func(ctx context.Context) ([]domain.Disease, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseView), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/diseases", "")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Une erreur est survenue lors de l'affichage des maladies."}`, resp.Body.String())
}

func TestHandleCreateDisease(t *testing.T) {
	var createdName string
	svc := &stubDiseaseService{
		CreateDiseaseFunc: func(ctx context.Context, disease domain.Disease) (domain.Disease, error) {
			createdName = disease.Name
			disease.ID = 3
			return disease, nil
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseCreate), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodPost, "/api/diseases", `{"name":"Ebola"}`)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.JSONEq(t, `{"message":"Maladie créée avec succès."}`, resp.Body.String())
	assert.Equal(t, "Ebola", createdName)
}

func TestHandleCreateDisease_InvalidBody(t *testing.T) {
	svc := &stubDiseaseService{}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseCreate), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodPost, "/api/diseases", `{"name":""}`)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleGetDisease(t *testing.T) {
	svc := &stubDiseaseService{
		GetDiseaseFunc: func(ctx context.Context, id uint) (domain.Disease, error) {
			return domain.Disease{ID: id, Name: "Coronavirus"}, nil
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseView), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/diseases/1", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"name":"Coronavirus"`)
}

func TestHandleGetDisease_NotFound(t *testing.T) {
	svc := &stubDiseaseService{
		GetDiseaseFunc: func(ctx context.Context, id uint) (domain.Disease, error) {
			return domain.Disease{}, fmt.Errorf("s.repo.FindByID -> %w", service.ErrDiseaseNotFound)
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseView), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/diseases/99", "")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleGetDisease_InvalidID(t *testing.T) {
	svc := &stubDiseaseService{}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseView), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodGet, "/api/diseases/abc", "")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Zero(t, svc.calls)
}

func TestHandleUpdateDisease(t *testing.T) {
	svc := &stubDiseaseService{
		UpdateDiseaseFunc: func(ctx context.Context, id uint, name string) (domain.Disease, error) {
			return domain.Disease{ID: id, Name: name}, nil
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseUpdate), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodPut, "/api/diseases/1", `{"name":"Covid-19"}`)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Maladie mise à jour avec succès."}`, resp.Body.String())
}

func TestHandleUpdateDisease_NotFound(t *testing.T) {
	svc := &stubDiseaseService{
		UpdateDiseaseFunc: func(ctx context.Context, id uint, name string) (domain.Disease, error) {
			return domain.Disease{}, service.ErrDiseaseNotFound
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseUpdate), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodPut, "/api/diseases/99", `{"name":"Covid-19"}`)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHandleDeleteDisease(t *testing.T) {
	svc := &stubDiseaseService{
		DeleteDiseaseFunc: func(ctx context.Context, id uint) error {
			return nil
		},
	}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseDelete), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodDelete, "/api/diseases/1", "")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Maladie supprimée avec succès."}`, resp.Body.String())
}

func TestHandleDeleteDisease_MissingScope(t *testing.T) {
	svc := &stubDiseaseService{}
	router := setupRouter(claimsWith(1, domain.ScopeDiseaseView), mountDiseaseRoutes(svc))

	resp := performRequest(router, http.MethodDelete, "/api/diseases/1", "")

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Zero(t, svc.calls)
}
