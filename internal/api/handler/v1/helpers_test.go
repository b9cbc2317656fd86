package v1

import (
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/episurv/reportcase-api/internal/api/middleware"
	"github.com/episurv/reportcase-api/internal/pkg/jwthelper"
)

// setupRouter builds a test router. A non-nil claims value is injected the
// way the authentication middleware would do it.
func setupRouter(claims *jwthelper.Claims, mount func(router *gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	if claims != nil {
		router.Use(func(ctx *gin.Context) {
			ctx.Set(middleware.ClaimsKey, claims)
		})
	}
	mount(router)

	return router
}

func claimsWith(userID uint, scopes ...string) *jwthelper.Claims {
	return &jwthelper.Claims{
		UserID: userID,
		Scopes: scopes,
	}
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	return resp
}
