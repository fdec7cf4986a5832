package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pmafa/internal/db"
	"github.com/pmafa/internal/mail"
	"github.com/pmafa/internal/service"
	"github.com/pmafa/internal/store"
	"github.com/pmafa/internal/upload"
)

type stubHTMLRender struct {
	mu   sync.Mutex
	last *stubHTMLInstance
}

type stubHTMLInstance struct {
	name string
	data interface{}
}

func (r *stubHTMLRender) Instance(name string, data interface{}) render.Render {
	inst := &stubHTMLInstance{name: name, data: data}
	r.mu.Lock()
	r.last = inst
	r.mu.Unlock()
	return inst
}

func (r *stubHTMLRender) rendered(t *testing.T) (string, gin.H) {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		t.Fatal("expected a template to be rendered")
	}
	data, _ := r.last.data.(gin.H)
	return r.last.name, data
}

func (r *stubHTMLInstance) Render(http.ResponseWriter) error {
	return nil
}

func (r *stubHTMLInstance) WriteContentType(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) last(t *testing.T) mail.Message {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("expected a mail to be sent")
	}
	return m.sent[len(m.sent)-1]
}

type testEnv struct {
	api    *API
	gdb    *gorm.DB
	pages  *service.PageService
	mailer *recordingMailer
	html   *stubHTMLRender
	engine *gin.Engine
}

const testAdminEmail = "admin@pmafa.test"

func setupHandlerTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	gdb, err := db.Open(fmt.Sprintf("file:handler-%s?mode=memory&cache=shared", name), logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	mailer := &recordingMailer{}
	pages := service.NewPageService(store.NewSQLStore(gdb), nil)
	auth := service.NewAuthService(gdb, mailer, 0, nil)
	contact := service.NewContactService(pages, mailer, nil)
	uploads := upload.NewStorage(t.TempDir(), "/images", 0)

	api := NewAPI(pages, auth, contact, uploads, Options{AdminEmail: testAdminEmail})

	html := &stubHTMLRender{}
	engine := gin.New()
	engine.HTMLRender = html
	engine.Use(sessions.Sessions("pmafa.sid", cookie.NewStore([]byte("test-secret"))))

	return &testEnv{api: api, gdb: gdb, pages: pages, mailer: mailer, html: html, engine: engine}
}

// withoutMail 让 env 使用未配置 SMTP 时的 mail.Noop。
func (e *testEnv) withoutMail() {
	noop := mail.Noop{}
	auth := service.NewAuthService(e.gdb, noop, 0, nil)
	contact := service.NewContactService(e.pages, noop, nil)
	e.api = NewAPI(e.pages, auth, contact, e.api.uploads, Options{AdminEmail: testAdminEmail})
}

// serve 执行请求并返回响应；cookies 会随请求一并发送。
func (e *testEnv) serve(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func postForm(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}
