package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError mapeia o Kind do erro de negócio para o status HTTP.
// Erro desconhecido vira 500 genérico (nunca vaza detalhe interno).
func FromError(c *gin.Context, err error, message string) {
	kind, ok := KindOf(err)
	if !ok {
		Internal(c, "internal_error", message)
		return
	}

	code := err.Error()

	switch kind {
	case KindValidation:
		BadRequest(c, code, message)
	case KindNotFound:
		NotFound(c, code, message)
	case KindConflict:
		Conflict(c, code, message)
	case KindPolicy:
		Unprocessable(c, code, message)
	default:
		Internal(c, code, message)
	}
}
