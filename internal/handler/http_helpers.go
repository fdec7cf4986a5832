package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func respondStatus(c *gin.Context, status int, success bool, message string) {
	c.JSON(status, gin.H{"success": success, "message": message})
}

// wantsJSON 报告客户端是否以 JSON 提交。
func wantsJSON(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), gin.MIMEJSON)
}

func postTrimmed(c *gin.Context, key string) string {
	return strings.TrimSpace(c.PostForm(key))
}
