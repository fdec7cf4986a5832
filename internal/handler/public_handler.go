package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/service"
)

// publicPage 描述一个直接渲染单例文档的公开页面。
type publicPage struct {
	kind     content.Kind
	template string
	dataKey  string
	title    string
	// section 是导航高亮标记，例如 isAbout。
	section string
	label   string
}

var publicPages = map[content.Kind]publicPage{
	content.KindServices:   {content.KindServices, "services.html", "servicesData", "Our Services", "isServices", "services"},
	content.KindContact:    {content.KindContact, "contact.html", "contactData", "Contact Us", "isContact", "contact"},
	content.KindVision:     {content.KindVision, "vision.html", "visionData", "Our Vision", "isAbout", "vision"},
	content.KindMission:    {content.KindMission, "mission.html", "missionData", "Our Mission", "isAbout", "mission"},
	content.KindGoals:      {content.KindGoals, "goals.html", "goalsData", "Our Goals", "isAbout", "goals"},
	content.KindObjectives: {content.KindObjectives, "objectives.html", "objectivesData", "Our Objectives", "isAbout", "objectives"},
	content.KindHistory:    {content.KindHistory, "history.html", "historyData", "Our History", "isAbout", "history"},
	content.KindLeadership: {content.KindLeadership, "leadership.html", "leadershipData", "Our Leadership", "isAbout", "leadership"},
	content.KindBarangay:   {content.KindBarangay, "barangay_leadership.html", "barangayData", "Barangay Leadership", "isAdminSection", "Barangay Leadership"},
}

// ShowHome 渲染首页
func (a *API) ShowHome(c *gin.Context) {
	home, err := a.pages.Home(c.Request.Context())
	if err != nil {
		a.renderError(c, http.StatusInternalServerError, "Error", "Failed to load home page", err)
		return
	}
	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":    "Home",
		"homeData": home,
		"siteLogo": home.SiteLogo,
		"isHome":   true,
	})
}

// ShowAbout 渲染关于我们入口页
func (a *API) ShowAbout(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "about.html", gin.H{
		"title":   "About Us",
		"isAbout": true,
	})
}

// ShowPage 返回按 kind 渲染单例页面的处理器。
func (a *API) ShowPage(kind content.Kind) gin.HandlerFunc {
	page, ok := publicPages[kind]
	if !ok {
		panic("handler: no public page for kind " + string(kind))
	}
	return func(c *gin.Context) {
		doc, err := a.pages.Document(c.Request.Context(), page.kind)
		if err != nil {
			a.renderError(c, http.StatusInternalServerError, "Error", "Failed to load "+page.label+" page.", err)
			return
		}
		a.renderHTML(c, http.StatusOK, page.template, gin.H{
			"title":      page.title,
			page.dataKey: doc,
			page.section: true,
		})
	}
}

// ShowVMGO 在同一页展示愿景、使命、目标与宗旨。
func (a *API) ShowVMGO(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{
		"title":   "Vision, Mission, Goals, Objectives",
		"isAbout": true,
	}
	for _, kind := range []content.Kind{content.KindVision, content.KindMission, content.KindGoals, content.KindObjectives} {
		doc, err := a.pages.Document(ctx, kind)
		if err != nil {
			a.renderError(c, http.StatusInternalServerError, "Error", "Failed to load VMGO page.", err)
			return
		}
		data[publicPages[kind].dataKey] = doc
	}
	a.renderHTML(c, http.StatusOK, "vmgo.html", data)
}

// ShowGallery 渲染画廊，首页故事图片以 stories 分类并入。
func (a *API) ShowGallery(c *gin.Context) {
	view, err := a.gallery.PublicGallery(c.Request.Context())
	if err != nil {
		a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to load gallery page due to an internal error.", err)
		return
	}
	a.renderHTML(c, http.StatusOK, "gallery.html", gin.H{
		"title":       "Gallery",
		"galleryData": view,
		"isGallery":   true,
	})
}

// ShowPerson 渲染领导层或乡镇协调员的详情页。
func (a *API) ShowPerson(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		a.renderError(c, http.StatusBadRequest, "Bad Request", "Missing person identifier.", nil)
		return
	}

	detail, err := a.people.FindPerson(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			a.renderError(c, http.StatusNotFound, "Not Found", "Person details not found.", nil)
			return
		}
		a.renderError(c, http.StatusInternalServerError, "Server Error", "Failed to load person details.", err)
		return
	}

	title := detail.Person.Name
	if title == "" {
		title = "Person Details"
	}
	a.renderHTML(c, http.StatusOK, "person_detail.html", gin.H{
		"title":          title,
		"person":         detail.Person,
		"backLink":       detail.BackLink,
		"isAbout":        !detail.FromBarangay,
		"isAdminSection": detail.FromBarangay,
	})
}

// ProcessContact 接收联系表单（表单或 JSON），返回 {success, message}。
func (a *API) ProcessContact(c *gin.Context) {
	var msg service.ContactMessage
	var err error
	if wantsJSON(c) {
		err = c.ShouldBindJSON(&msg)
	} else {
		err = c.ShouldBind(&msg)
	}
	if err != nil {
		respondStatus(c, http.StatusBadRequest, false, service.ContactFailureMessage(service.ErrContactIncomplete))
		return
	}

	if err := a.contact.Submit(c.Request.Context(), msg); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrContactIncomplete) {
			status = http.StatusBadRequest
		} else {
			a.logger.Error("contact form failed", zap.Error(err))
		}
		respondStatus(c, status, false, service.ContactFailureMessage(err))
		return
	}
	respondStatus(c, http.StatusOK, true, "Message sent successfully!")
}
