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

type ReportcaseService interface {
	ListReportcases(ctx context.Context) ([]domain.Reportcase, error)
	GetReportcase(ctx context.Context, id uint) (domain.Reportcase, error)
	CreateReportcase(ctx context.Context, reportcase domain.Reportcase, userID uint) (domain.Reportcase, error)
	UpdateReportcase(ctx context.Context, id uint, input domain.Reportcase, userID uint) (domain.Reportcase, error)
	DeleteReportcase(ctx context.Context, id uint) error
}

type ReportcaseHandler struct {
	svc ReportcaseService
}

func NewReportcaseHandler(svc ReportcaseService) *ReportcaseHandler {
	return &ReportcaseHandler{
		svc: svc,
	}
}

// HandleListReportcases godoc
// @Summary      Récupérer la liste des cas reportés
// @Tags         reportcases
// @Produce      json
// @Success      200  {array}   response.ReportcaseListItem
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reportcases [get]
// @Security     BearerAuth
func (h *ReportcaseHandler) HandleListReportcases(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeReportcaseView) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.ReportcasePermissionError))
		return
	}

	reportcases, err := h.svc.ListReportcases(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListReportcases -> h.svc.ListReportcases -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.ReportcaseDisplayError))
		return
	}

	ctx.JSON(http.StatusOK, response.NewReportcaseList(reportcases))
}

// HandleCreateReportcase godoc
// @Summary      Créer un nouveau cas reporté
// @Tags         reportcases
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateReportcaseRequest  true  "cas reporté"
// @Success      201    {object}  map[string]string
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /reportcases [post]
// @Security     BearerAuth
func (h *ReportcaseHandler) HandleCreateReportcase(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeReportcaseCreate) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.ReportcasePermissionError))
		return
	}

	var req request.CreateReportcaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reportcase, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.CreateReportcase(ctx.Request.Context(), reportcase, claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrReferencedRowNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New(response.ReportcaseCreateError)))
			return
		}

		err = fmt.Errorf("HandleCreateReportcase -> h.svc.CreateReportcase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.ReportcaseCreateError))
		return
	}

	response.RenderMessage(ctx, http.StatusCreated, response.ReportcaseCreateSuccess)
}

// HandleGetReportcase godoc
// @Summary      Afficher un cas reporté spécifique
// @Tags         reportcases
// @Produce      json
// @Param        id   path      int  true  "Reportcase ID"
// @Success      200  {object}  domain.Reportcase
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reportcases/{id} [get]
// @Security     BearerAuth
func (h *ReportcaseHandler) HandleGetReportcase(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeReportcaseView) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.ReportcasePermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reportcase ID: %w", err)))
		return
	}

	reportcase, err := h.svc.GetReportcase(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrReportcaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.ReportcaseDisplayError))
			return
		}

		err = fmt.Errorf("HandleGetReportcase -> h.svc.GetReportcase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.ReportcaseDisplayError))
		return
	}

	ctx.JSON(http.StatusOK, reportcase)
}

// HandleUpdateReportcase godoc
// @Summary      Mettre à jour un cas reporté spécifique
// @Description  Seul l'utilisateur ayant créé le cas reporté peut le modifier.
// @Tags         reportcases
// @Accept       json
// @Produce      json
// @Param        id     path      int                              true  "Reportcase ID"
// @Param        input  body      request.UpdateReportcaseRequest  true  "cas reporté"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /reportcases/{id} [put]
// @Security     BearerAuth
func (h *ReportcaseHandler) HandleUpdateReportcase(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeReportcaseUpdate) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.ReportcasePermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reportcase ID: %w", err)))
		return
	}

	var req request.UpdateReportcaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	input, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	_, err = h.svc.UpdateReportcase(ctx.Request.Context(), uint(id), input, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReportcaseNotFound):
			response.RenderErr(ctx, response.ErrNotFound(response.ReportcaseUpdateError))
		case errors.Is(err, service.ErrNotReportOwner):
			response.RenderErr(ctx, response.ErrPermissionDenied(response.ReportcasePermissionError))
		case errors.Is(err, service.ErrReferencedRowNotFound):
			response.RenderErr(ctx, response.ErrBadRequest(errors.New(response.ReportcaseUpdateError)))
		default:
			err = fmt.Errorf("HandleUpdateReportcase -> h.svc.UpdateReportcase -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err, response.ReportcaseUpdateError))
		}
		return
	}

	response.RenderMessage(ctx, http.StatusOK, response.ReportcaseUpdateSuccess)
}

// HandleDeleteReportcase godoc
// @Summary      Supprimer un cas reporté spécifique
// @Tags         reportcases
// @Produce      json
// @Param        id   path      int  true  "Reportcase ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /reportcases/{id} [delete]
// @Security     BearerAuth
func (h *ReportcaseHandler) HandleDeleteReportcase(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !claims.TokenCan(domain.ScopeReportcaseDelete) {
		response.RenderErr(ctx, response.ErrPermissionDenied(response.ReportcasePermissionError))
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid reportcase ID: %w", err)))
		return
	}

	if err := h.svc.DeleteReportcase(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrReportcaseNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(response.ReportcaseDeleteError))
			return
		}

		err = fmt.Errorf("HandleDeleteReportcase -> h.svc.DeleteReportcase -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err, response.ReportcaseDeleteError))
		return
	}

	response.RenderMessage(ctx, http.StatusOK, response.ReportcaseDeleteSuccess)
}
