package responses

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wardbook/internal/apperrors"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid table", apperrors.InvalidTable("x"), http.StatusBadRequest},
		{"invalid limit", apperrors.InvalidLimit("x"), http.StatusBadRequest},
		{"invalid column", apperrors.InvalidColumn("patient", "x"), http.StatusBadRequest},
		{"invalid input", apperrors.InvalidInput("x"), http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("ctx: %w", apperrors.NotFound("x")), http.StatusNotFound},
		{"unauthorized", apperrors.New(apperrors.KindUnauthorized, "x"), http.StatusUnauthorized},
		{"constraint violation", apperrors.DataAccess(&pgconn.PgError{Code: "23503"}, "x"), http.StatusConflict},
		{"other data access", apperrors.DataAccess(assert.AnError, "x"), http.StatusInternalServerError},
		{"plain error", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestError_HidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, apperrors.DataAccess(assert.AnError, "failed to execute query"), "Failed to load patients")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "Failed to load patients", body.Message)
	assert.Empty(t, body.Error)
	assert.Len(t, c.Errors, 1)
}

func TestError_ClientErrorsCarryReason(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Error(c, apperrors.InvalidTable("pg_user"), "Invalid table")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `invalid table \"pg_user\"`)
}
