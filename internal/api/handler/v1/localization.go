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

type LocalizationService interface {
	ListLocalizations(ctx context.Context) ([]domain.Localization, error)
	GetLocalization(ctx context.Context, id uint) (domain.Localization, error)
	CreateLocalization(ctx context.Context, localization domain.Localization) (domain.Localization, error)
	UpdateLocalization(ctx context.Context, id uint, country, continent string) (domain.Localization, error)
	DeleteLocalization(ctx context.Context, id uint) error
}

type LocalizationHandler struct {
	svc LocalizationService
}

func NewLocalizationHandler(svc LocalizationService) *LocalizationHandler {
	return &LocalizationHandler{
		svc: svc,
	}
}

// HandleListLocalizations godoc
// @Summary      Récupérer la liste des localisations
// @Tags         localizations
// @Produce      json
// @Success      200  {array}   response.LocalizationListItem
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /localizations [get]
// @Security     BearerAuth
func (h *LocalizationHandler) HandleListLocalizations(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeLocalizationView) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.LocalizationPermissionError))
		return
	}

	localizations, err := h.svc.ListLocalizations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListLocalizations -> h.svc.ListLocalizations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.LocalizationDisplayError))
		return
	}

	ctx.JSON(http.StatusOK, response.NewLocalizationList(localizations))
}

// HandleCreateLocalization godoc
// @Summary      Créer une nouvelle localisation
// @Tags         localizations
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateLocalizationRequest  true  "localisation"
// @Success      201    {object}  map[string]string
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /localizations [post]
// @Security     BearerAuth
func (h *LocalizationHandler) HandleCreateLocalization(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeLocalizationCreate) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.LocalizationPermissionError))
		return
	}

	var req request.CreateLocalizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err := h.svc.CreateLocalization(ctx.Request.Context(), domain.Localization{
		Country:   req.Country,
		Continent: req.Continent,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateLocalization -> h.svc.CreateLocalization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.LocalizationCreateError))
		return
	}

	response.RenderMessage(ctx, http.StatusCreated, response.LocalizationCreateSuccess)
}

// HandleGetLocalization godoc
// @Summary      Afficher une localisation spécifique
// @Tags         localizations
// @Produce      json
// @Param        id   path      int  true  "Localization ID"
// @Success      200  {object}  domain.Localization
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /localizations/{id} [get]
// @Security     BearerAuth
func (h *LocalizationHandler) HandleGetLocalization(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeLocalizationView) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.LocalizationPermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid localization ID: %w", err)))
		return
	}

	localization, err := h.svc.GetLocalization(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrLocalizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.LocalizationDisplayError))
			return
		}

		err = fmt.Errorf("HandleGetLocalization -> h.svc.GetLocalization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.LocalizationDisplayError))
		return
	}

	ctx.JSON(http.StatusOK, localization)
}

// HandleUpdateLocalization godoc
// @Summary      Mettre à jour une localisation spécifique
// @Tags         localizations
// @Accept       json
// @Produce      json
// @Param        id     path      int                                true  "Localization ID"
// @Param        input  body      request.UpdateLocalizationRequest  true  "localisation"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /localizations/{id} [put]
// @Security     BearerAuth
func (h *LocalizationHandler) HandleUpdateLocalization(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeLocalizationUpdate) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.LocalizationPermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid localization ID: %w", err)))
		return
	}

	var req request.UpdateLocalizationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.UpdateLocalization(ctx.Request.Context(), uint(id), req.Country, req.Continent)
	if err != nil {
		if errors.Is(err, service.ErrLocalizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.LocalizationUpdateError))
			return
		}

		err = fmt.Errorf("HandleUpdateLocalization -> h.svc.UpdateLocalization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.LocalizationUpdateError))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, response.LocalizationUpdateSuccess)
}

// HandleDeleteLocalization godoc
// @Summary      Supprimer une localisation spécifique
// @Tags         localizations
// @Produce      json
// @Param        id   path      int  true  "Localization ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /localizations/{id} [delete]
// @Security     BearerAuth
func (h *LocalizationHandler) HandleDeleteLocalization(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeLocalizationDelete) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.LocalizationPermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid localization ID: %w", err)))
		return
	}

	if err := h.svc.DeleteLocalization(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrLocalizationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.LocalizationDeleteError))
			return
		}

		err = fmt.Errorf("HandleDeleteLocalization -> h.svc.DeleteLocalization -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.LocalizationDeleteError))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, response.LocalizationDeleteSuccess)
}
