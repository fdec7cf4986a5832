// Package markdown renders admin-authored bodies (vision, mission, history,
// biographies) to sanitised HTML. A line holding only a video link becomes
// an embedded player.
package markdown

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML(), html.WithUnsafe()),
	)
	sanitizer     = newSanitizer()
	textSanitizer = bluemonday.StrictPolicy()
)

func newSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("class", "data-video-embed", "data-video-platform").OnElements("div")
	policy.AllowAttrs("src").Matching(embedSrcPattern).OnElements("iframe")
	policy.AllowAttrs("title", "allow", "allowfullscreen", "frameborder", "loading", "referrerpolicy").OnElements("iframe")
	return policy
}

// Render converts Markdown to sanitised HTML. Conversion errors fall back to
// the escaped source.
func Render(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := engine.Convert([]byte(applyEmbeds(src)), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// StripTags removes all markup, e.g. for plain-text email bodies.
func StripTags(src string) string {
	return textSanitizer.Sanitize(src)
}

// SanitizeHTML applies the rendering policy to already-built HTML.
func SanitizeHTML(src string) template.HTML {
	return template.HTML(sanitizer.Sanitize(src))
}

var (
	fencePattern     = regexp.MustCompile("^(```|~~~)")
	listIndexPattern = regexp.MustCompile(`^\d+\.\s+`)
	bareLinkPattern  = regexp.MustCompile(`^<?((?:https?://)?[^\s<>]+)>?$`)
)

// applyEmbeds replaces stand-alone video links outside code blocks.
func applyEmbeds(src string) string {
	lines := strings.Split(src, "\n")
	fence := ""
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if m := fencePattern.FindString(trimmed); m != "" {
			switch {
			case fence == "":
				fence = m
			case m == fence:
				fence = ""
			}
			continue
		}
		if fence != "" || skipLine(line, trimmed) {
			continue
		}
		match := bareLinkPattern.FindStringSubmatch(trimmed)
		if match == nil {
			continue
		}
		video, ok := ParseVideo(match[1])
		if !ok {
			continue
		}
		lines[i] = video.HTML()
	}
	return strings.Join(lines, "\n")
}

func skipLine(line, trimmed string) bool {
	if trimmed == "" || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}
	for _, prefix := range []string{">", "- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return listIndexPattern.MatchString(trimmed)
}
