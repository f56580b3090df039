package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/masteryyh/tablekit/pkg/customerrors"
)

type GenericResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func NewGenericResponse(code int, message string, data any) *GenericResponse {
	return &GenericResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewGenericResponse(http.StatusOK, "ok", data))
}

func Failed(c *gin.Context, err error) {
	bizErr := customerrors.GetBusinessError(err)
	if bizErr != nil {
		c.JSON(http.StatusOK, NewGenericResponse(bizErr.Code, bizErr.Message, nil))
	} else {
		slog.ErrorContext(c, "request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusOK, NewGenericResponse(http.StatusInternalServerError, "internal server error", nil))
	}
}

func Abort(c *gin.Context, reason any) {
	err, ok := reason.(error)
	if ok {
		bizErr := customerrors.GetBusinessError(err)
		if bizErr != nil {
			c.AbortWithStatusJSON(http.StatusOK, NewGenericResponse(bizErr.Code, bizErr.Message, nil))
		} else {
			slog.ErrorContext(c, "an error occurred", "error", err)
			c.AbortWithStatusJSON(http.StatusOK, NewGenericResponse(http.StatusInternalServerError, "internal server error", nil))
		}
	} else {
		slog.ErrorContext(c, "an error occurred or panic recovered", "reason", reason)
		c.AbortWithStatusJSON(http.StatusInternalServerError, NewGenericResponse(http.StatusInternalServerError, "internal server error", nil))
	}
}
