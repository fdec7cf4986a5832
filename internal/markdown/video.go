package markdown

import (
	"fmt"
	htmlstd "html"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	embedSrcPattern = regexp.MustCompile(
		`^https://(?:www\.)?(?:youtube\.com/embed/|youtube-nocookie\.com/embed/|player\.vimeo\.com/video/|facebook\.com/plugins/video\.php\?)`,
	)
	youtubeTimePattern = regexp.MustCompile(`(?i)(\d+)(h|m|s)`)
)

// Video is a link resolved to an embeddable player URL.
type Video struct {
	Platform string
	Source   string
	EmbedURL string
}

// ParseVideo resolves YouTube, Vimeo and Facebook video links. Links that
// are already player URLs are accepted as-is.
func ParseVideo(raw string) (Video, bool) {
	source := strings.Trim(strings.TrimSpace(raw), "<>")
	if source == "" {
		return Video{}, false
	}
	if !strings.HasPrefix(strings.ToLower(source), "http") {
		source = "https://" + source
	}
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return Video{}, false
	}

	for _, parse := range []func(*url.URL) (string, string, bool){parseYouTube, parseVimeo, parseFacebook} {
		if platform, embed, ok := parse(u); ok {
			return Video{Platform: platform, Source: source, EmbedURL: embed}, true
		}
	}
	return Video{}, false
}

// EmbedURL returns the player URL for a story embed link, or "" when the
// link is not a supported video.
func EmbedURL(raw string) string {
	v, ok := ParseVideo(raw)
	if !ok {
		return ""
	}
	return v.EmbedURL
}

// HTML renders the responsive player markup.
func (v Video) HTML() string {
	return fmt.Sprintf(
		`<div class="video-embed" data-video-embed="true" data-video-platform="%s">`+
			`<iframe src="%s" title="Video player" loading="lazy" allow="accelerometer; clipboard-write; encrypted-media; gyroscope; picture-in-picture; web-share" allowfullscreen frameborder="0" referrerpolicy="strict-origin-when-cross-origin"></iframe>`+
			`</div>`,
		htmlstd.EscapeString(v.Platform),
		htmlstd.EscapeString(v.EmbedURL),
	)
}

func parseYouTube(u *url.URL) (string, string, bool) {
	host := strings.ToLower(u.Hostname())
	path := strings.Trim(u.Path, "/")
	var id string
	switch {
	case host == "youtu.be":
		id = path
	case isHostOrSubdomain(host, "youtube.com") || isHostOrSubdomain(host, "youtube-nocookie.com"):
		switch {
		case path == "watch":
			id = u.Query().Get("v")
		case strings.HasPrefix(path, "shorts/"), strings.HasPrefix(path, "embed/"), strings.HasPrefix(path, "live/"):
			id = path[strings.Index(path, "/")+1:]
		}
	default:
		return "", "", false
	}
	id, _, _ = strings.Cut(id, "/")
	if id == "" {
		return "", "", false
	}

	values := url.Values{}
	values.Set("rel", "0")
	values.Set("playsinline", "1")
	if start := youtubeStart(u.Query()); start > 0 {
		values.Set("start", strconv.Itoa(start))
	}
	return "youtube", "https://www.youtube.com/embed/" + url.PathEscape(id) + "?" + values.Encode(), true
}

func youtubeStart(q url.Values) int {
	value := q.Get("start")
	if value == "" {
		value = q.Get("t")
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return max(seconds, 0)
	}
	total := 0
	for _, m := range youtubeTimePattern.FindAllStringSubmatch(value, -1) {
		n, _ := strconv.Atoi(m[1])
		switch strings.ToLower(m[2]) {
		case "h":
			total += n * 3600
		case "m":
			total += n * 60
		case "s":
			total += n
		}
	}
	return total
}

func parseVimeo(u *url.URL) (string, string, bool) {
	host := strings.ToLower(u.Hostname())
	if !isHostOrSubdomain(host, "vimeo.com") {
		return "", "", false
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for _, segment := range segments {
		if _, err := strconv.ParseUint(segment, 10, 64); err == nil {
			return "vimeo", "https://player.vimeo.com/video/" + segment, true
		}
	}
	return "", "", false
}

func parseFacebook(u *url.URL) (string, string, bool) {
	host := strings.ToLower(u.Hostname())
	if host == "fb.watch" {
		return "facebook", facebookPlugin(u.String()), true
	}
	if !isHostOrSubdomain(host, "facebook.com") {
		return "", "", false
	}
	if strings.HasPrefix(u.Path, "/plugins/video.php") {
		return "facebook", "https://www.facebook.com/plugins/video.php?" + u.RawQuery, true
	}
	if strings.Contains(u.Path, "/videos/") || u.Path == "/watch" || u.Path == "/watch/" || strings.HasPrefix(u.Path, "/reel/") {
		return "facebook", facebookPlugin(u.String()), true
	}
	return "", "", false
}

func facebookPlugin(href string) string {
	values := url.Values{}
	values.Set("href", href)
	values.Set("show_text", "false")
	return "https://www.facebook.com/plugins/video.php?" + values.Encode()
}

func isHostOrSubdomain(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}
