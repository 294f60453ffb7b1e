package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workme/backend/internal/pkg/apperrors"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext(t)

	err := SuccessResponse(c, http.StatusCreated, "Booking created", map[string]string{"id": "abc"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Booking created", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "abc", data["id"])
}

func TestAppErrorResponse_KindMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "Insufficient funds maps to 402",
			err:            apperrors.New(apperrors.KindInsufficientFunds, "insufficient balance"),
			expectedStatus: http.StatusPaymentRequired,
			expectedKind:   "insufficient_funds",
		},
		{
			name:           "Forbidden maps to 403",
			err:            apperrors.New(apperrors.KindForbidden, "only the client can complete the booking"),
			expectedStatus: http.StatusForbidden,
			expectedKind:   "forbidden",
		},
		{
			name:           "Invalid transition maps to 409",
			err:            apperrors.New(apperrors.KindInvalidTransition, "cannot move from pending to in_progress"),
			expectedStatus: http.StatusConflict,
			expectedKind:   "invalid_transition",
		},
		{
			name:           "Not found maps to 404",
			err:            apperrors.New(apperrors.KindNotFound, "booking not found"),
			expectedStatus: http.StatusNotFound,
			expectedKind:   "not_found",
		},
		{
			name:           "Validation maps to 400",
			err:            apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5"),
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "validation",
		},
		{
			name:           "Unclassified errors map to 500",
			err:            errors.New("pq: connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t)

			err := AppErrorResponse(c, tt.err)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.expectedKind, response["kind"])
		})
	}
}

func TestAppErrorResponse_NeverLeaksCause(t *testing.T) {
	c, rec := newTestContext(t)

	wrapped := apperrors.Wrap(apperrors.KindInternal, "failed to settle booking", errors.New("pq: duplicate key value"))
	err := AppErrorResponse(c, wrapped)
	require.NoError(t, err)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "failed to settle booking", response["error"])
	assert.NotContains(t, rec.Body.String(), "duplicate key")
}

func TestErrorResponseHandler_Defaults(t *testing.T) {
	c, rec := newTestContext(t)

	err := UnauthorizedResponse(c, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Unauthorized", response["error"])
	assert.Equal(t, float64(http.StatusUnauthorized), response["code"])
}
