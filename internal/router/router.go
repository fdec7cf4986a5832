package router

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/handler"
	"github.com/pmafa/internal/logging"
	"github.com/pmafa/internal/markdown"
	"github.com/pmafa/internal/telemetry"
)

// Options 控制路由的会话、模板与静态文件配置。
type Options struct {
	SessionSecret string
	SessionName   string
	SessionMaxAge time.Duration
	// SecureCookies 在生产环境下开启，仅通过 HTTPS 发送会话 Cookie。
	SecureCookies bool

	// TemplateGlob 为空时不加载模板，由调用方自行设置 HTMLRender。
	TemplateGlob string
	StaticDir    string
	UploadDir    string
	UploadURL    string

	Tracing bool
	Logger  *zap.Logger
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(logging.RequestLogger(logger), logging.Recovery(logger, api.Panic))
	if opts.Tracing {
		r.Use(telemetry.Middleware())
	}

	// 配置会话中间件
	store := cookie.NewStore([]byte(opts.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(opts.SessionMaxAge / time.Second),
		HttpOnly: true,
		Secure:   opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	sessionName := opts.SessionName
	if sessionName == "" {
		sessionName = "pmafa.sid"
	}
	r.Use(sessions.Sessions(sessionName, store))

	// 加载模板并添加自定义函数
	r.SetFuncMap(FuncMap())
	if opts.TemplateGlob != "" {
		r.LoadHTMLGlob(opts.TemplateGlob)
	}

	// 静态文件服务
	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
	}
	if opts.UploadDir != "" && opts.UploadURL != "" {
		r.Static(opts.UploadURL, opts.UploadDir)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", api.ShowHome)
	r.GET("/about", api.ShowAbout)
	r.GET("/about/vmgo", api.ShowVMGO)
	for _, kind := range []content.Kind{
		content.KindVision,
		content.KindMission,
		content.KindGoals,
		content.KindObjectives,
		content.KindHistory,
		content.KindLeadership,
	} {
		r.GET("/about/"+string(kind), api.ShowPage(kind))
	}
	r.GET("/administration/barangay-leadership", api.ShowPage(content.KindBarangay))
	r.GET("/administration/person/:slug", api.ShowPerson)
	r.GET("/services", api.ShowPage(content.KindServices))
	r.GET("/gallery", api.ShowGallery)
	r.GET("/contact", api.ShowPage(content.KindContact))
	r.POST("/process-contact", api.ProcessContact)

	r.GET("/login", api.ShowLoginPage)
	r.POST("/login", api.Login)
	r.GET("/logout", api.Logout)
	r.GET("/forgot-password", api.ShowForgotPassword)
	r.POST("/forgot-password", api.ForgotPassword)
	r.POST("/verify-code", api.VerifyCode)

	// 后台管理路由
	admin := r.Group("/admin")
	admin.Use(api.AuthRequired())
	{
		admin.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/admin/dashboard")
		})
		admin.GET("/dashboard", api.ShowDashboard)
		for _, kind := range handler.EditableKinds() {
			admin.GET("/edit-"+string(kind), api.ShowEditor(kind))
			admin.POST("/edit-"+string(kind), api.UpdatePage(kind))
		}
		admin.GET("/edit-logo", api.ShowLogoEditor)
		admin.POST("/edit-logo", api.UpdateLogo)
	}

	r.NoRoute(api.NotFound)

	return r
}

// FuncMap 返回模板中可用的辅助函数。
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"markdown": markdown.Render,
		"embedURL": markdown.EmbedURL,
		"plain":    markdown.StripTags,
		"nl2br":    nl2br,
		"join":     strings.Join,
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("January 2, 2006")
		},
		// safeURL 仅用于服务端生成的 tel:/mailto: 链接。
		"safeURL": func(s string) template.URL {
			return template.URL(s)
		},
		"personForm": personForm,
	}
}

// personForm 组装后台人员表单片段的数据，person 可以为空。
func personForm(prefix, upload string, person any) map[string]any {
	var p content.Person
	switch v := person.(type) {
	case content.Person:
		p = v
	case *content.Person:
		if v != nil {
			p = *v
		}
	}
	return map[string]any{"prefix": prefix, "upload": upload, "person": p}
}

// nl2br 转义文本并把换行替换为 <br>。
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
