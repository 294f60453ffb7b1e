package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLivenessEndpoint(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "payments-service", nil)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "alive", response["status"])

	build := response["build"].(map[string]interface{})
	assert.Equal(t, "payments-service", build["service_name"])
}

func TestReadinessEndpoint_AllHealthy(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "payments-service", map[string]Checker{
		"postgres": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return nil },
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "ready", response["status"])

	checks := response["checks"].(map[string]interface{})
	assert.Equal(t, "healthy", checks["postgres"])
	assert.Equal(t, "healthy", checks["redis"])
}

func TestReadinessEndpoint_DependencyDown(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "payments-service", map[string]Checker{
		"postgres": func(ctx context.Context) error { return nil },
		"redis":    func(ctx context.Context) error { return errors.New("connection refused") },
	})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "not_ready", response["status"])

	checks := response["checks"].(map[string]interface{})
	assert.Equal(t, "healthy", checks["postgres"])
	assert.Contains(t, checks["redis"], "unhealthy")
}
