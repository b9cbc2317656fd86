package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/episurv/reportcase-api/internal/api/handler/v1/response"
	"github.com/episurv/reportcase-api/internal/api/middleware"
	"github.com/episurv/reportcase-api/internal/pkg/jwthelper"
)

func getClaimsFromContext(ctx *gin.Context) (*jwthelper.Claims, *response.Err) {
	claims, ok := middleware.GetClaims(ctx)
	if !ok {
		return nil, &response.Err{
			StatusCode: http.StatusUnauthorized,
			Message:    "Non authentifié.",
		}
	}

	return claims, nil
}
