package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmafa/internal/db"
)

func registerAuth(env *testEnv) {
	env.engine.GET("/login", env.api.ShowLoginPage)
	env.engine.POST("/login", env.api.Login)
	env.engine.GET("/logout", env.api.Logout)
	env.engine.GET("/forgot-password", env.api.ShowForgotPassword)
	env.engine.POST("/forgot-password", env.api.ForgotPassword)
	env.engine.POST("/verify-code", env.api.VerifyCode)

	admin := env.engine.Group("/admin")
	admin.Use(env.api.AuthRequired())
	admin.GET("/dashboard", env.api.ShowDashboard)
}

func TestAdminRequiresLogin(t *testing.T) {
	env := setupHandlerTest(t)
	registerAuth(env)

	w := env.serve(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	w = env.serve(httptest.NewRequest(http.MethodGet, "/login", nil), w.Result().Cookies()...)
	require.Equal(t, http.StatusOK, w.Code)
	name, data := env.html.rendered(t)
	require.Equal(t, "login.html", name)
	require.Equal(t, "Please log in to access the admin area.", data["error"])
}

func TestLoginFlow(t *testing.T) {
	env := setupHandlerTest(t)
	registerAuth(env)
	_, err := db.UpsertUser(env.gdb, "admin", testAdminEmail, "s3cret")
	require.NoError(t, err)

	w := env.serve(postForm("/login", "username=admin&password=wrong"))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	w = env.serve(httptest.NewRequest(http.MethodGet, "/login", nil), w.Result().Cookies()...)
	_, data := env.html.rendered(t)
	require.Equal(t, "Invalid username or password.", data["error"])

	w = env.serve(postForm("/login", "username=admin&password=s3cret"))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	cookies := w.Result().Cookies()

	w = env.serve(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	name, data := env.html.rendered(t)
	require.Equal(t, "admin_dashboard.html", name)
	require.Equal(t, true, data["isAdmin"])

	w = env.serve(httptest.NewRequest(http.MethodGet, "/login", nil), cookies...)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	w = env.serve(httptest.NewRequest(http.MethodGet, "/logout", nil), cookies...)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
}

var codePattern = regexp.MustCompile(`code is: (\d{6})`)

func TestPasswordResetFlow(t *testing.T) {
	env := setupHandlerTest(t)
	registerAuth(env)

	w := env.serve(postForm("/forgot-password", ""))
	require.Equal(t, http.StatusOK, w.Code)
	name, data := env.html.rendered(t)
	require.Equal(t, "forgot_password.html", name)
	require.Equal(t, "Email not registered.", data["error"])

	_, err := db.UpsertUser(env.gdb, "admin", testAdminEmail, "old-password")
	require.NoError(t, err)

	w = env.serve(postForm("/forgot-password", ""))
	require.Equal(t, http.StatusOK, w.Code)
	name, data = env.html.rendered(t)
	require.Equal(t, "verify_code.html", name)
	require.Equal(t, testAdminEmail, data["email"])

	match := codePattern.FindStringSubmatch(env.mailer.last(t).Text)
	require.Len(t, match, 2)

	form := url.Values{"email": {testAdminEmail}, "code": {"000000"}, "newPassword": {"new-password"}}
	if match[1] == "000000" {
		form.Set("code", "999999")
	}
	env.serve(postForm("/verify-code", form.Encode()))
	name, data = env.html.rendered(t)
	require.Equal(t, "verify_code.html", name)
	require.Equal(t, "Invalid or expired code.", data["error"])

	form.Set("code", match[1])
	env.serve(postForm("/verify-code", form.Encode()))
	name, data = env.html.rendered(t)
	require.Equal(t, "login.html", name)
	require.Equal(t, "Password reset successful. Please log in.", data["message"])

	w = env.serve(postForm("/login", "username=admin&password=new-password"))
	require.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
}

func TestForgotPasswordWithoutMailConfigured(t *testing.T) {
	env := setupHandlerTest(t)
	env.withoutMail()
	registerAuth(env)

	_, err := db.UpsertUser(env.gdb, "admin", testAdminEmail, "old-password")
	require.NoError(t, err)

	w := env.serve(postForm("/forgot-password", ""))
	require.Equal(t, http.StatusOK, w.Code)
	name, data := env.html.rendered(t)
	require.Equal(t, "forgot_password.html", name)
	require.Equal(t, "Email is not configured on this server.", data["error"])
}
