package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/episurv/reportcase-api/internal/api/handler/v1/request"
	"github.com/episurv/reportcase-api/internal/api/handler/v1/response"
	"github.com/episurv/reportcase-api/internal/domain"
	"github.com/episurv/reportcase-api/internal/service"
)

type DiseaseService interface {
	ListDiseases(ctx context.Context) ([]domain.Disease, error)
	GetDisease(ctx context.Context, id uint) (domain.Disease, error)
	CreateDisease(ctx context.Context, disease domain.Disease) (domain.Disease, error)
	UpdateDisease(ctx context.Context, id uint, name string) (domain.Disease, error)
	DeleteDisease(ctx context.Context, id uint) error
}

type DiseaseHandler struct {
	svc DiseaseService
}

func NewDiseaseHandler(svc DiseaseService) *DiseaseHandler {
	return &DiseaseHandler{
		svc: svc,
	}
}

// HandleListDiseases godoc
// @Summary      Récupérer la liste des maladies
// @Tags         diseases
// @Produce      json
// @Success      200  {array}   response.DiseaseListItem
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /diseases [get]
// @Security     BearerAuth
func (h *DiseaseHandler) HandleListDiseases(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeDiseaseView) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.DiseasePermissionError))
		return
	}

	diseases, err := h.svc.ListDiseases(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListDiseases -> h.svc.ListDiseases -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.DiseaseDisplayError))
		return
	}

	ctx.JSON(http.StatusOK, response.NewDiseaseList(diseases))
}

// HandleCreateDisease godoc
// @Summary      Créer une nouvelle maladie
// @Tags         diseases
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDiseaseRequest  true  "maladie"
// @Success      201    {object}  map[string]string
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /diseases [post]
// @Security     BearerAuth
func (h *DiseaseHandler) HandleCreateDisease(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeDiseaseCreate) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.DiseasePermissionError))
		return
	}

	var req request.CreateDiseaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err := h.svc.CreateDisease(ctx.Request.Context(), domain.Disease{
		Name: req.Name,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateDisease -> h.svc.CreateDisease -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.DiseaseCreateError))
		return
	}

	response.RenderMessage(ctx, http.StatusCreated, response.DiseaseCreateSuccess)
}

// HandleGetDisease godoc
// @Summary      Afficher une maladie spécifique
// @Tags         diseases
// @Produce      json
// @Param        id   path      int  true  "Disease ID"
// @Success      200  {object}  domain.Disease
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /diseases/{id} [get]
// @Security     BearerAuth
func (h *DiseaseHandler) HandleGetDisease(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeDiseaseView) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.DiseasePermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid disease ID: %w", err)))
		return
	}

	disease, err := h.svc.GetDisease(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrDiseaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.DiseaseDisplayError))
			return
		}

		err = fmt.Errorf("HandleGetDisease -> h.svc.GetDisease -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.DiseaseDisplayError))
		return
	}

	ctx.JSON(http.StatusOK, disease)
}

// HandleUpdateDisease godoc
// @Summary      Mettre à jour une maladie spécifique
// @Tags         diseases
// @Accept       json
// @Produce      json
// @Param        id     path      int                           true  "Disease ID"
// @Param        input  body      request.UpdateDiseaseRequest  true  "maladie"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /diseases/{id} [put]
// @Security     BearerAuth
func (h *DiseaseHandler) HandleUpdateDisease(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeDiseaseUpdate) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.DiseasePermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid disease ID: %w", err)))
		return
	}

	var req request.UpdateDiseaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.UpdateDisease(ctx.Request.Context(), uint(id), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrDiseaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.DiseaseUpdateError))
			return
		}

		err = fmt.Errorf("HandleUpdateDisease -> h.svc.UpdateDisease -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.DiseaseUpdateError))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, response.DiseaseUpdateSuccess)
}

// HandleDeleteDisease godoc
// @Summary      Supprimer une maladie spécifique
// @Tags         diseases
// @Produce      json
// @Param        id   path      int  true  "Disease ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /diseases/{id} [delete]
// @Security     BearerAuth
func (h *DiseaseHandler) HandleDeleteDisease(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeDiseaseDelete) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.DiseasePermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid disease ID: %w", err)))
		return
	}

	// Dependent reportcases are not checked; the store's constraints decide.
	if err := h.svc.DeleteDisease(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrDiseaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.DiseaseDeleteError))
			return
		}

		err = fmt.Errorf("HandleDeleteDisease -> h.svc.DeleteDisease -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.DiseaseDeleteError))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, response.DiseaseDeleteSuccess)
}
