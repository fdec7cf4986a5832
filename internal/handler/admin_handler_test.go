package handler

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/editor"
	"github.com/pmafa/internal/service"
)

func registerEditors(env *testEnv) {
	admin := env.engine.Group("/admin")
	admin.GET("/dashboard", env.api.ShowDashboard)
	for _, kind := range EditableKinds() {
		admin.GET("/edit-"+string(kind), env.api.ShowEditor(kind))
		admin.POST("/edit-"+string(kind), env.api.UpdatePage(kind))
	}
	admin.GET("/edit-logo", env.api.ShowLogoEditor)
	admin.POST("/edit-logo", env.api.UpdateLogo)
}

type multipartFile struct {
	field       string
	filename    string
	contentType string
	body        []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, files ...multipartFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.body)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEditableKindsCoverEveryPage(t *testing.T) {
	require.Equal(t, content.AllKinds(), EditableKinds())
}

func TestShowDashboard(t *testing.T) {
	env := setupHandlerTest(t)
	registerEditors(env)

	w := env.serve(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	name, data := env.html.rendered(t)
	require.Equal(t, "admin_dashboard.html", name)
	stats, ok := data["stats"].(*service.DashboardStats)
	require.True(t, ok)
	require.Equal(t, 1, stats.MayorCount)
	require.Equal(t, stats.BarangayCount, len(stats.Barangays))
}

func TestShowEditorRendersDocument(t *testing.T) {
	env := setupHandlerTest(t)
	registerEditors(env)

	for _, kind := range EditableKinds() {
		t.Run(string(kind), func(t *testing.T) {
			w := env.serve(httptest.NewRequest(http.MethodGet, "/admin/edit-"+string(kind), nil))
			require.Equal(t, http.StatusOK, w.Code)

			name, data := env.html.rendered(t)
			page := pageEditors[kind]
			require.Equal(t, page.template, name)
			doc, ok := data[page.dataKey].(content.Document)
			require.True(t, ok)
			require.Equal(t, kind, doc.Kind())
			require.Equal(t, "/admin/edit-"+string(kind), data["action"])
		})
	}
}

func TestUpdateServicesRedirectsAndPersists(t *testing.T) {
	env := setupHandlerTest(t)
	registerEditors(env)
	ctx := context.Background()

	before, err := env.pages.Services(ctx)
	require.NoError(t, err)

	body := "hero.title=Programs" +
		"&servicesSection.services[0].title=Livelihood" +
		"&servicesSection.services[0].description=Training+and+grants"
	w := env.serve(postForm("/admin/edit-services", body))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/edit-services", w.Header().Get("Location"))

	after, err := env.pages.Services(ctx)
	require.NoError(t, err)
	require.Equal(t, "Programs", after.Hero.Title)
	require.Len(t, after.ServicesSection.Services, 1)
	require.Equal(t, "Livelihood", after.ServicesSection.Services[0].Title)
	require.Equal(t, before.ServicesSection.Services[0].Icon, after.ServicesSection.Services[0].Icon)
}

func TestUpdateHomeValidationError(t *testing.T) {
	env := setupHandlerTest(t)
	registerEditors(env)

	w := env.serve(postForm("/admin/edit-home", "hero.title=No+stories"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	name, data := env.html.rendered(t)
	require.Equal(t, "error.html", name)
	require.Equal(t, "Validation Error", data["title"])

	home, err := env.pages.Home(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, "No stories", home.Hero.Title)
}

func TestUpdateRejectsNonImageUpload(t *testing.T) {
	env := setupHandlerTest(t)
	registerEditors(env)

	req := multipartRequest(t, "/admin/edit-services",
		map[string]string{"servicesSection.services[0].title": "Livelihood"},
		multipartFile{field: "serviceImage_0", filename: "notes.txt", contentType: "text/plain", body: []byte("hello")},
	)
	w := env.serve(req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	_, data := env.html.rendered(t)
	require.Equal(t, "Upload Error", data["title"])
	require.Equal(t, "Invalid file type.", data["error"])
}

func TestUpdateLogo(t *testing.T) {
	env := setupHandlerTest(t)
	registerEditors(env)

	w := env.serve(multipartRequest(t, "/admin/edit-logo", nil))
	require.Equal(t, http.StatusOK, w.Code)
	_, data := env.html.rendered(t)
	require.Equal(t, "Please select an image file to upload.", data["uploadError"])

	req := multipartRequest(t, "/admin/edit-logo", nil,
		multipartFile{field: editor.FieldSiteLogo, filename: "Logo.PNG", contentType: "image/png", body: pngBytes(t)},
	)
	w = env.serve(req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/edit-logo", w.Header().Get("Location"))

	chrome := env.pages.SiteChrome(context.Background())
	require.True(t, strings.HasPrefix(chrome.SiteLogo, "/images/"), chrome.SiteLogo)
	require.True(t, strings.HasSuffix(chrome.SiteLogo, ".png"), chrome.SiteLogo)
}
