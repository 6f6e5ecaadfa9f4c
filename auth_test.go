package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "testsecret")
	t.Setenv("ADMIN_USERNAME", "USER")
	t.Setenv("ADMIN_PASSWORD", "admin-pass")
	t.Setenv("TRAINER1_USERNAME", "TRAINER")
	t.Setenv("TRAINER1_PASSWORD", "trainer-pass")
	require.NoError(t, LoadCredentials())

	r := gin.New()
	SetupRoutes(r)
	return r
}

func doLogin(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccess(t *testing.T) {
	r := setupAuthRouter(t)

	w := doLogin(t, r, "USER", "admin-pass")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, "USER", resp["username"])
	assert.Equal(t, "admin", resp["role"])
}

func TestLoginUsernameIsCaseInsensitive(t *testing.T) {
	r := setupAuthRouter(t)

	w := doLogin(t, r, "user", "admin-pass")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupAuthRouter(t)

	assert.Equal(t, http.StatusUnauthorized, doLogin(t, r, "USER", "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, doLogin(t, r, "NOBODY", "whatever").Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	r := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsIdentityFromToken(t *testing.T) {
	r := setupAuthRouter(t)

	login := doLogin(t, r, "USER", "admin-pass")
	require.Equal(t, http.StatusOK, login.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp["token"])
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var me map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(t, "USER", me["username"])
	assert.Equal(t, "admin", me["role"])
	assert.Equal(t, float64(adminUserID), me["user_id"])
}

func TestAdminOnlyRejectsTrainer(t *testing.T) {
	r := setupAuthRouter(t)

	login := doLogin(t, r, "TRAINER", "trainer-pass")
	require.Equal(t, http.StatusOK, login.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))
	require.Equal(t, "trainer", resp["role"])

	// expenses are admin-only; the trainer is cut off by the middleware
	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.Header.Set("Authorization", "Bearer "+resp["token"])
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
