package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the error envelope. Server-side failures use the "error" key, denied
// permissions use the "message" key, matching the historical API contract.
type Err struct {
	StatusCode int    `json:"-"`
	ErrorMsg   string `json:"error,omitempty"`
	Message    string `json:"message,omitempty"`
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

// RenderMessage renders the success envelope {"message": ...}.
func RenderMessage(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, gin.H{"message": message})
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		ErrorMsg:   err.Error(),
	}
}

// ErrPermissionDenied is deliberately not logged.
func ErrPermissionDenied(message string) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    message,
	}
}

func ErrNotFound(displayMsg string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		ErrorMsg:   displayMsg,
	}
}

// ErrInternalServerError logs the underlying error and returns the generic
// display message, never the raw error text.
func ErrInternalServerError(err error, displayMsg string) *Err {
	zap.L().Error(err.Error())

	return &Err{
		StatusCode: http.StatusInternalServerError,
		ErrorMsg:   displayMsg,
	}
}
