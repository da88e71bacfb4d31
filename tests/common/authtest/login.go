//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	reqdto "chefbook/internal/handler/dto/request"
	resdto "chefbook/internal/handler/dto/response"
	"chefbook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const DefaultPassword = "password123"

// RegisterUser creates an account through the public API; chefs get their
// binding code generated server side.
func RegisterUser(t *testing.T, router *gin.Engine, email, role, nickname string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		reqdto.RegisterRequest{
			Email:    email,
			Password: DefaultPassword,
			Role:     role,
			Nickname: nickname,
		}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resp))
	require.NotEmpty(t, resp.AccessToken, "login response is missing the access token")

	return resp.AccessToken
}

func RegisterAndLogin(t *testing.T, router *gin.Engine, email, role, nickname string) string {
	t.Helper()
	RegisterUser(t, router, email, role, nickname)
	return LoginUser(t, router, email, DefaultPassword)
}
