package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/episurv/reportcase-api/internal/pkg/jwthelper"
)

// ClaimsKey is the gin context key under which the bearer token's claims are
// stored once authenticated.
const ClaimsKey = "claims"

// Authenticate rejects requests without a valid bearer token and stores the
// token's claims in the request context.
func Authenticate(signingKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Non authentifié."})
			return
		}

		claims, err := jwthelper.ParseToken(signingKey, token)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Non authentifié."})
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}

// GetClaims returns the claims stored by Authenticate.
func GetClaims(ctx *gin.Context) (*jwthelper.Claims, bool) {
	value, exists := ctx.Get(ClaimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*jwthelper.Claims)

	return claims, ok
}
