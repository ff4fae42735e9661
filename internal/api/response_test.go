package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"contact_backend/internal/shared/apperr"
)

type sampleReq struct {
	Name                 string `validate:"required"`
	Password             string `validate:"min=6"`
	PasswordConfirmation string `validate:"eqfield=Password"`
}

func TestFail_StatusAndEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"not found", apperr.ErrNotFound, http.StatusNotFound, "resource not found"},
		{"unauthorized", apperr.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"internal hides detail", errors.New("dial tcp 10.0.0.1:5432: refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Fail(c, zap.NewNop(), tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedMessage, body.Message)
			assert.NotContains(t, w.Body.String(), "10.0.0.1")
		})
	}
}

func TestFail_ValidationDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)

	verr := validator.New().Struct(sampleReq{Password: "abc", PasswordConfirmation: "xyz"})
	require.Error(t, verr)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	Fail(c, zap.NewNop(), BindError(verr))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Errors, 3)
	assert.Contains(t, body.Errors, FieldError{Field: "name", Message: "name is required"})
	assert.Contains(t, body.Errors, FieldError{Field: "password_confirmation", Message: "password confirmation does not match password"})
}

func TestOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, http.StatusCreated, "created", gin.H{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"created","data":{"id":1}}`, w.Body.String())
}
