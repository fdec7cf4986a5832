package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/editor"
	"github.com/pmafa/internal/form"
)

// pageEditor 描述一个后台编辑页：渲染的模板与把表单套用到文档上的方式。
type pageEditor struct {
	template string
	title    string
	dataKey  string
	label    string
	apply    func(doc content.Document, sub *form.Submission, now time.Time)
}

var pageEditors = map[content.Kind]pageEditor{
	content.KindHome: {"admin_edit_home.html", "Edit Home Page", "homeData", "home page", func(doc content.Document, sub *form.Submission, now time.Time) {
		editor.ApplyHome(doc.(*content.HomePage), sub, now)
	}},
	content.KindServices: {"admin_edit_services.html", "Edit Services Page", "servicesData", "services page", func(doc content.Document, sub *form.Submission, _ time.Time) {
		editor.ApplyServices(doc.(*content.ServicesPage), sub)
	}},
	content.KindGallery: {"admin_edit_gallery.html", "Edit Gallery Page", "galleryData", "gallery page", func(doc content.Document, sub *form.Submission, now time.Time) {
		editor.ApplyGallery(doc.(*content.GalleryPage), sub, now)
	}},
	content.KindContact: {"admin_edit_contact.html", "Edit Contact Page", "contactData", "contact page", func(doc content.Document, sub *form.Submission, _ time.Time) {
		editor.ApplyContact(doc.(*content.ContactPage), sub)
	}},
	content.KindVision:     {"admin_edit_text.html", "Edit Vision Page", "pageData", "vision page", applyText},
	content.KindMission:    {"admin_edit_text.html", "Edit Mission Page", "pageData", "mission page", applyText},
	content.KindGoals:      {"admin_edit_list.html", "Edit Goals Page", "pageData", "goals page", applyList},
	content.KindObjectives: {"admin_edit_list.html", "Edit Objectives Page", "pageData", "objectives page", applyList},
	content.KindHistory: {"admin_edit_history.html", "Edit History Page", "historyData", "history page", func(doc content.Document, sub *form.Submission, _ time.Time) {
		editor.ApplyHistory(doc.(*content.HistoryPage), sub)
	}},
	content.KindLeadership: {"admin_edit_leadership.html", "Edit Leadership Page", "leadershipData", "leadership page", func(doc content.Document, sub *form.Submission, _ time.Time) {
		editor.ApplyLeadership(doc.(*content.LeadershipPage), sub)
	}},
	content.KindBarangay: {"admin_edit_barangay.html", "Edit Barangay Leadership", "barangayData", "barangay leadership page", func(doc content.Document, sub *form.Submission, _ time.Time) {
		editor.ApplyBarangay(doc.(*content.BarangayPage), sub)
	}},
}

func applyText(doc content.Document, sub *form.Submission, _ time.Time) {
	editor.ApplyTextPage(doc.(*content.TextPage), sub)
}

func applyList(doc content.Document, sub *form.Submission, _ time.Time) {
	editor.ApplyListPage(doc.(*content.ListPage), sub)
}

func editPath(kind content.Kind) string {
	return "/admin/edit-" + string(kind)
}

// ShowDashboard 渲染后台主面板
func (a *API) ShowDashboard(c *gin.Context) {
	stats, err := a.pages.DashboardStats(c.Request.Context())
	if err != nil {
		a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to load dashboard data.", err)
		return
	}
	a.renderHTML(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"title":        "Admin Dashboard",
		"currentPage":  "dashboard",
		"stats":        stats,
		"barangayList": stats.Barangays,
		"kinds":        content.AllKinds(),
	})
}

// ShowEditor 返回渲染某个页面编辑表单的处理器。
func (a *API) ShowEditor(kind content.Kind) gin.HandlerFunc {
	page := mustEditor(kind)
	return func(c *gin.Context) {
		doc, err := a.pages.Document(c.Request.Context(), kind)
		if err != nil {
			a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to load "+page.label+" data.", err)
			return
		}
		a.renderHTML(c, http.StatusOK, page.template, gin.H{
			"title":       page.title,
			"currentPage": "edit-" + string(kind),
			"kind":        string(kind),
			"action":      editPath(kind),
			page.dataKey:  doc,
		})
	}
}

// UpdatePage 返回保存某个页面编辑表单的处理器，成功后重定向回编辑页。
func (a *API) UpdatePage(kind content.Kind) gin.HandlerFunc {
	page := mustEditor(kind)
	return func(c *gin.Context) {
		sub, err := a.readSubmission(c)
		if err != nil {
			a.renderUploadError(c, err)
			return
		}

		ctx := c.Request.Context()
		doc, err := a.pages.Document(ctx, kind)
		if err != nil {
			a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to update "+page.label+" data.", err)
			return
		}

		page.apply(doc, sub, a.now())

		if err := a.pages.Save(ctx, doc); err != nil {
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				a.renderHTML(c, http.StatusBadRequest, "error.html", gin.H{
					"title":   "Validation Error",
					"error":   "Failed to update: Check input values.",
					"details": verr.Error(),
				})
				return
			}
			a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to update "+page.label+" data.", err)
			return
		}

		c.Redirect(http.StatusFound, editPath(kind))
	}
}

func mustEditor(kind content.Kind) pageEditor {
	page, ok := pageEditors[kind]
	if !ok {
		panic(fmt.Sprintf("handler: no editor for kind %q", kind))
	}
	return page
}

// ShowLogoEditor 渲染站点 Logo 编辑页
func (a *API) ShowLogoEditor(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_edit_logo.html", gin.H{
		"title":          "Edit Site Logo",
		"currentPage":    "edit-logo",
		"currentLogoUrl": a.siteChrome(c).SiteLogo,
	})
}

// UpdateLogo 保存上传的站点 Logo
func (a *API) UpdateLogo(c *gin.Context) {
	sub, err := a.readSubmission(c)
	if err != nil {
		a.renderUploadError(c, err)
		return
	}

	logo := sub.Uploads().First(editor.FieldSiteLogo)
	if logo == "" {
		a.renderHTML(c, http.StatusOK, "admin_edit_logo.html", gin.H{
			"title":          "Edit Site Logo",
			"currentPage":    "edit-logo",
			"currentLogoUrl": a.siteChrome(c).SiteLogo,
			"uploadError":    "Please select an image file to upload.",
		})
		return
	}

	if err := a.pages.UpdateLogo(c.Request.Context(), logo); err != nil {
		a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to update site logo.", err)
		return
	}
	c.Redirect(http.StatusFound, "/admin/edit-logo")
}

// EditableKinds 返回拥有后台编辑页的页面类型。
func EditableKinds() []content.Kind {
	kinds := make([]content.Kind, 0, len(pageEditors))
	for _, kind := range content.AllKinds() {
		if _, ok := pageEditors[kind]; ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
