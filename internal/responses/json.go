package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wardbook/internal/apperrors"
)

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	c.JSON(statusCode, failure(err, message))
}

// Abort is Fail for middlewares: it stops the handler chain.
func Abort(c *gin.Context, statusCode int, err error, message string) {
	c.AbortWithStatusJSON(statusCode, failure(err, message))
}

// Error renders err with the status its kind maps to. Unclassified errors
// are answered with 500 and their text is kept out of the response.
func Error(c *gin.Context, err error, message string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		Fail(c, status, nil, message)
		return
	}
	Fail(c, status, err, message)
}

func StatusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidTable, apperrors.KindInvalidLimit, apperrors.KindInvalidColumn, apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindDataAccess:
		if apperrors.IsConstraintViolation(err) {
			return http.StatusConflict
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func failure(err error, message string) APIResponse {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
