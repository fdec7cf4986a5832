package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/pmafa/internal/form"
	"github.com/pmafa/internal/upload"
)

// readSubmission 解析后台表单：multipart 请求先保存上传图片，普通表单直接读取字段。
func (a *API) readSubmission(c *gin.Context) (*form.Submission, error) {
	multipartForm, err := c.MultipartForm()
	switch {
	case err == nil:
		uploads, err := a.uploads.SaveAll(multipartForm.File)
		if err != nil {
			return nil, err
		}
		return form.New(url.Values(multipartForm.Value), uploads), nil
	case errors.Is(err, http.ErrNotMultipart):
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		return form.New(c.Request.PostForm, form.Uploads{}), nil
	default:
		return nil, err
	}
}

// renderUploadError 将上传失败映射为错误页。
func (a *API) renderUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upload.ErrTooLarge):
		a.renderHTML(c, http.StatusBadRequest, "error.html", gin.H{
			"title":   "Upload Error",
			"error":   "Image too large (Max 10MB).",
			"details": a.detail(err),
		})
	case errors.Is(err, upload.ErrNotImage):
		a.renderHTML(c, http.StatusBadRequest, "error.html", gin.H{
			"title":   "Upload Error",
			"error":   "Invalid file type.",
			"details": "Only image files are allowed.",
		})
	default:
		a.renderError(c, http.StatusInternalServerError, "Server Error", "Error during file upload.", err)
	}
}

func (a *API) detail(err error) string {
	if a.production || err == nil {
		return ""
	}
	return err.Error()
}
