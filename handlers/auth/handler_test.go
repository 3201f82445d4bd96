package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/fura-1993/totono/testutils"
	"github.com/fura-1993/totono/utils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)
	utils.Logger.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func loginRequestWith(password string) *http.Request {
	body, _ := json.Marshal(map[string]string{"password": password})
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "correct-horse")
	t.Setenv("ADMIN_SECRET", "test-secret")

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, loginRequestWith("correct-horse"))

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["success"])

	// la session est posée en cookie httpOnly
	cookies := resp.Result().Cookies()
	var session *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == utils.AdminSessionCookie {
			session = cookie
		}
	}
	assert.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
	assert.NoError(t, utils.VerifyAdminToken(session.Value))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "correct-horse")
	t.Setenv("ADMIN_SECRET", "test-secret")

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, loginRequestWith("battery-staple"))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "パスワードが正しくありません", respBody["error"])
}

func TestLogin_PasswordNotConfigured(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_SECRET", "test-secret")

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, loginRequestWith("anything"))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestLogin_InvalidBody(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "correct-horse")

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString("not-json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogout_ClearsSession(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/api/admin/logout", Logout)

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/logout", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	cookies := resp.Result().Cookies()
	var session *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == utils.AdminSessionCookie {
			session = cookie
		}
	}
	assert.NotNil(t, session)
	assert.Empty(t, session.Value)
	assert.True(t, session.MaxAge < 0)
}
