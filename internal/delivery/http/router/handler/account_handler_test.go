package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder, *mockUsecase.MockAccountUsecase, *AccountHandler) {
	t.Helper()

	uc := mockUsecase.NewMockAccountUsecase(t)
	handler := &AccountHandler{uc: uc}

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return c, rec, uc, handler
}

func TestAccountHandler_Register(t *testing.T) {
	body := `{"name":"王小明","email":"ming@example.com","password":"S3cure!pass"}`
	c, rec, uc, handler := newAccountTestContext(t, body)

	userID := uuid.New()
	uc.EXPECT().Register(mock.Anything, mock.AnythingOfType("*usecase.RegisterInput")).
		Return(&usecase.RegisterOutput{User: &entity.User{
			ID:    userID,
			Name:  "王小明",
			Email: "ming@example.com",
		}}, nil)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, userID.String())
	assert.Contains(t, responseBody, "ming@example.com")
	// The stored credential must never appear on the wire.
	assert.NotContains(t, responseBody, "S3cure!pass")
	assert.NotContains(t, responseBody, "credential")
}

func TestAccountHandler_Register_RejectsInvalidEmail(t *testing.T) {
	body := `{"name":"王小明","email":"not-an-email","password":"S3cure!pass"}`
	c, _, _, handler := newAccountTestContext(t, body)

	err := handler.Register(c)
	require.Error(t, err)
}

func TestAccountHandler_Login(t *testing.T) {
	body := `{"email":"ming@example.com","password":"S3cure!pass"}`
	c, rec, uc, handler := newAccountTestContext(t, body)

	uc.EXPECT().Login(mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(&usecase.LoginOutput{
			AccessToken: "header.payload.signature",
			User: &entity.User{
				ID:            uuid.New(),
				Name:          "王小明",
				Email:         "ming@example.com",
				EmailVerified: true,
			},
		}, nil)

	require.NoError(t, handler.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "header.payload.signature")
	assert.Contains(t, responseBody, `"emailVerified":true`)
}

func TestAccountHandler_VerifyEmail(t *testing.T) {
	body := `{"email":"ming@example.com","code":"abc123"}`
	c, rec, uc, handler := newAccountTestContext(t, body)

	uc.EXPECT().VerifyEmail(mock.Anything, mock.AnythingOfType("*usecase.VerifyEmailInput")).Return(nil)

	require.NoError(t, handler.VerifyEmail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "verified")
}

func TestAccountHandler_ResetPassword(t *testing.T) {
	body := `{"email":"ming@example.com","code":"abc123","newPassword":"N3w!password"}`
	c, rec, uc, handler := newAccountTestContext(t, body)

	uc.EXPECT().ResetPassword(mock.Anything, mock.AnythingOfType("*usecase.ResetPasswordInput")).Return(nil)

	require.NoError(t, handler.ResetPassword(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "reset")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}