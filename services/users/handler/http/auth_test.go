package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/workme/backend/internal/pkg/apperrors"
	"github.com/workme/backend/internal/pkg/models"
	"github.com/workme/backend/services/users/mocks"
)

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"email": "maria@example.com", "password": "s3nh4forte", "full_name": "Maria Silva", "user_type": "client"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.RegisterRequest) (*models.AuthResponse, error) {
			assert.Equal(t, "maria@example.com", r.Email)
			assert.Equal(t, "client", r.UserType)
			return &models.AuthResponse{
				AccessToken: "token-123",
				TokenType:   "Bearer",
				User:        &models.User{ID: userID, Email: r.Email, UserType: r.UserType},
			}, nil
		})

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "User registered successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "token-123", data["access_token"])
}

func TestRegister_InvalidPayload(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockUserUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{invalid_json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid request payload", response["error"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"email": "maria@example.com", "password": "s3nh4forte", "user_type": "client"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.New(apperrors.KindConflict, "email already registered"))

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, string(apperrors.KindConflict), response["kind"])
	assert.Equal(t, "email already registered", response["error"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	requestBody := `{"email": "maria@example.com", "password": "wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.New(apperrors.KindUnauthorized, "invalid email or password"))

	// Act
	err := authHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "invalid email or password", response["error"])
}

func TestMe_NoAuthContext(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authHandler := NewAuthHandler(mocks.NewMockUserUC(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := authHandler.Me(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	authHandler := NewAuthHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	userID := uuid.New()
	c.Set("user_id", userID)
	c.Set("user_role", models.RoleClient)

	mockUserUC.EXPECT().
		GetUser(gomock.Any(), userID).
		Return(&models.User{ID: userID, Email: "maria@example.com"}, nil)

	// Act
	err := authHandler.Me(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "maria@example.com", data["email"])
}
