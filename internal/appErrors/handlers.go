package appErrors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurai_backend/internal/logger"
)

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err onto the gin response. Unknown error types are
// wrapped as internal errors so their details never leak to clients.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if !As(err, &appErr) {
		appErr = New(CodeInternalError, "Internal server error", http.StatusInternalServerError).WithError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.Error("server error", "code", appErr.Code, "error", appErr.Error(), "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
