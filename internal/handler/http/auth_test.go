package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/motorph/payroll-backend-go/internal/domain/auth"
	"github.com/motorph/payroll-backend-go/internal/handler/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthService struct {
	result auth.LoginResponse
	err    error
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if f.err != nil {
		return auth.LoginResponse{}, f.err
	}
	return f.result, nil
}

func postLogin(t *testing.T, handler AuthHandler, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Login(rec, req)
	return rec
}

func TestLoginHandler_Success(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{
		result: auth.LoginResponse{
			AccessToken: "token",
			ExpiresAt:   1717200000,
			EmployeeID:  "10001",
		},
	})

	rec := postLogin(t, handler, auth.LoginRequest{EmployeeID: "10001", Password: "password123"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "token", data["access_token"])
	assert.Equal(t, "10001", data["employee_id"])
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{err: auth.ErrInvalidCredentials})

	rec := postLogin(t, handler, auth.LoginRequest{EmployeeID: "10001", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNAUTHORIZED", resp.Error.Code)
}

func TestLoginHandler_MalformedBody(t *testing.T) {
	handler := NewAuthHandler(&fakeAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
