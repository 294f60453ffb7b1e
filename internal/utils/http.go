package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workme/backend/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response with a stable kind
type ErrorResponse struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind,omitempty"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// kindStatus maps error kinds to HTTP status codes
var kindStatus = map[apperrors.Kind]int{
	apperrors.KindInsufficientFunds: http.StatusPaymentRequired,
	apperrors.KindForbidden:         http.StatusForbidden,
	apperrors.KindInvalidState:      http.StatusConflict,
	apperrors.KindInvalidTransition: http.StatusConflict,
	apperrors.KindNotFound:          http.StatusNotFound,
	apperrors.KindConflict:          http.StatusConflict,
	apperrors.KindUnauthorized:      http.StatusUnauthorized,
	apperrors.KindValidation:        http.StatusBadRequest,
}

// AppErrorResponse maps a domain error to an HTTP response carrying the
// stable kind and the caller-facing message only.
func AppErrorResponse(c echo.Context, err error) error {
	kind := apperrors.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{
		Success: false,
		Kind:    string(kind),
		Error:   apperrors.MessageOf(err),
		Code:    status,
	})
}
