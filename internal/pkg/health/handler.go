package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker reports whether a dependency is reachable
type Checker func(ctx context.Context) error

// BuildInfo contains information about the running build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

func buildInfo(serviceName string) BuildInfo {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	info := BuildInfo{
		Version:     "development",
		GitCommit:   "unknown",
		ServiceName: serviceName,
		GoVersion:   runtime.Version(),
		Hostname:    hostname,
	}
	if version := os.Getenv("VERSION"); version != "" {
		info.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		info.GitCommit = gitCommit
	}
	return info
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
// Liveness only reports build info; readiness runs the dependency checks.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checks map[string]Checker) {
	e.GET("/health/live", func(c echo.Context) error {
		info := buildInfo(serviceName)
		info.ServerTime = time.Now().UTC()
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "alive",
			"build":  info,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				results[name] = "unhealthy: " + err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "healthy"
		}

		return c.JSON(status, map[string]interface{}{
			"status": map[bool]string{true: "ready", false: "not_ready"}[status == http.StatusOK],
			"checks": results,
		})
	})
}
