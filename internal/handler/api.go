package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmafa/internal/service"
	"github.com/pmafa/internal/upload"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	pages   *service.PageService
	gallery *service.GalleryService
	people  *service.PeopleService
	auth    *service.AuthService
	contact *service.ContactService
	uploads *upload.Storage
	logger  *zap.Logger

	adminEmail string
	production bool
	now        func() time.Time
}

// Options 是构造 API 时的可选项。
type Options struct {
	// AdminEmail 是忘记密码流程发送验证码的账号邮箱。
	AdminEmail string
	// Production 为 true 时错误页不展示细节。
	Production bool
	Logger     *zap.Logger
}

const siteChromeContextKey = "__site_chrome"

// NewAPI constructs a handler set with shared services.
func NewAPI(pages *service.PageService, auth *service.AuthService, contact *service.ContactService, uploads *upload.Storage, opts Options) *API {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		pages:      pages,
		gallery:    service.NewGalleryService(pages),
		people:     service.NewPeopleService(pages),
		auth:       auth,
		contact:    contact,
		uploads:    uploads,
		logger:     logger,
		adminEmail: opts.AdminEmail,
		production: opts.Production,
		now:        time.Now,
	}
}

func (a *API) siteChrome(c *gin.Context) service.SiteChrome {
	if cached, exists := c.Get(siteChromeContextKey); exists {
		if chrome, ok := cached.(service.SiteChrome); ok {
			return chrome
		}
	}
	chrome := a.pages.SiteChrome(c.Request.Context())
	c.Set(siteChromeContextKey, chrome)
	return chrome
}

// isAdmin 读取会话中的登录标记；未挂载会话中间件时视为未登录。
func isAdmin(c *gin.Context) bool {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return false
	}
	flag, _ := sessions.Default(c).Get(sessionAdminKey).(bool)
	return flag
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	chrome := a.siteChrome(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["siteLogo"]; !exists {
		payload["siteLogo"] = chrome.SiteLogo
	}
	if _, exists := payload["footerData"]; !exists {
		payload["footerData"] = chrome.Footer
	}
	if _, exists := payload["isAdmin"]; !exists {
		payload["isAdmin"] = isAdmin(c)
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = a.now().Year()
	}

	c.HTML(status, template, payload)
}

// renderError 渲染通用错误页，生产环境下隐藏 details。
func (a *API) renderError(c *gin.Context, status int, title, message string, err error) {
	if err != nil {
		_ = c.Error(err)
		a.logger.Error(message,
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	a.renderHTML(c, status, "error.html", gin.H{
		"title":   title,
		"error":   message,
		"details": a.detail(err),
	})
}

// NotFound 渲染 404 页面。
func (a *API) NotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "error.html", gin.H{
		"title":   "Page Not Found",
		"error":   "Sorry, the page you are looking for does not exist.",
		"details": "Cannot " + c.Request.Method + " " + c.Request.URL.Path,
	})
}

// Panic 用于 logging.Recovery，渲染 500 页面。
func (a *API) Panic(c *gin.Context, recovered any) {
	var details string
	if !a.production {
		details = fmt.Sprint(recovered)
	}
	a.renderHTML(c, http.StatusInternalServerError, "error.html", gin.H{
		"title":   "Server Error",
		"error":   "Something went wrong on our end!",
		"details": details,
	})
}
