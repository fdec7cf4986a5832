package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmafa/internal/mail"
	"github.com/pmafa/internal/service"
)

const (
	sessionAdminKey      = "isAdmin"
	sessionUserKey       = "userId"
	sessionLoginErrorKey = "loginError"
)

// ShowLoginPage 渲染登录页面，已登录时直接进入后台。
func (a *API) ShowLoginPage(c *gin.Context) {
	if isAdmin(c) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}

	session := sessions.Default(c)
	flash, _ := session.Get(sessionLoginErrorKey).(string)
	if flash != "" {
		session.Delete(sessionLoginErrorKey)
		if err := session.Save(); err != nil {
			a.logger.Warn("failed to clear login flash", zap.Error(err))
		}
	}

	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
		"error": flash,
	})
}

// Login 处理用户登录请求
func (a *API) Login(c *gin.Context) {
	session := sessions.Default(c)

	user, err := a.auth.Authenticate(c.PostForm("username"), c.PostForm("password"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			a.logger.Info("admin login failed", zap.String("username", c.PostForm("username")))
			a.redirectToLogin(c, "Invalid username or password.")
			return
		}
		a.logger.Error("login error", zap.Error(err))
		a.redirectToLogin(c, "Server error during login.")
		return
	}

	session.Set(sessionAdminKey, true)
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		a.renderError(c, http.StatusInternalServerError, "Login Error", "Failed to establish session.", err)
		return
	}

	a.logger.Info("admin login successful", zap.String("username", user.Username))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Logout 处理用户登出
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to log out.", err)
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// AuthRequired 拦截未登录的后台请求，并在会话中留下提示。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin(c) {
			c.Next()
			return
		}
		a.redirectToLogin(c, "Please log in to access the admin area.")
		c.Abort()
	}
}

func (a *API) redirectToLogin(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set(sessionLoginErrorKey, message)
	if err := session.Save(); err != nil {
		a.logger.Warn("failed to store login flash", zap.Error(err))
	}
	c.Redirect(http.StatusFound, "/login")
}

// ShowForgotPassword 渲染找回密码页面。
func (a *API) ShowForgotPassword(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "forgot_password.html", gin.H{
		"title": "Forgot Password",
	})
}

// ForgotPassword 向管理员邮箱发送验证码。
func (a *API) ForgotPassword(c *gin.Context) {
	email, err := a.auth.StartPasswordReset(c.Request.Context(), a.adminEmail)
	if err != nil {
		message := "Failed to send reset code."
		switch {
		case errors.Is(err, service.ErrEmailNotRegistered):
			message = "Email not registered."
		case errors.Is(err, mail.ErrNotConfigured):
			message = "Email is not configured on this server."
			a.logger.Error("forgot password error", zap.Error(err))
		default:
			a.logger.Error("forgot password error", zap.Error(err))
		}
		a.renderHTML(c, http.StatusOK, "forgot_password.html", gin.H{
			"title": "Forgot Password",
			"error": message,
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "verify_code.html", gin.H{
		"title": "Verify Code",
		"email": email,
	})
}

// VerifyCode 校验验证码并设置新密码。
func (a *API) VerifyCode(c *gin.Context) {
	email := postTrimmed(c, "email")
	err := a.auth.CompletePasswordReset(email, postTrimmed(c, "code"), c.PostForm("newPassword"))
	if err != nil {
		var message string
		switch {
		case errors.Is(err, service.ErrResetCodeInvalid):
			message = "Invalid or expired code."
		case errors.Is(err, service.ErrUserNotFound):
			message = "User not found."
		case errors.Is(err, service.ErrPasswordRequired):
			message = "New password is required."
		default:
			a.logger.Error("verify code error", zap.Error(err))
			message = "Failed to reset password."
		}
		a.renderHTML(c, http.StatusOK, "verify_code.html", gin.H{
			"title": "Verify Code",
			"email": email,
			"error": message,
		})
		return
	}

	a.logger.Info("admin password reset", zap.String("email", email))
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title":   "Admin Login",
		"message": "Password reset successful. Please log in.",
	})
}
