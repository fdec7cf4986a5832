// Package upload stores admin image uploads on disk.
package upload

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pmafa/internal/form"
)

// DefaultMaxBytes 单个文件的默认上限（10MB）。
const DefaultMaxBytes int64 = 10 << 20

var (
	// ErrTooLarge 文件超过大小限制
	ErrTooLarge = errors.New("upload exceeds size limit")
	// ErrNotImage 文件不是可识别的图片
	ErrNotImage = errors.New("upload is not an image")
)

// extensions 按解码出的格式决定扩展名，客户端文件名不参与。
var extensions = map[string]string{
	"png":  ".png",
	"jpeg": ".jpg",
	"gif":  ".gif",
	"bmp":  ".bmp",
	"tiff": ".tiff",
	"webp": ".webp",
}

// Storage 将上传文件保存到 Dir，并以 URLPath 前缀对外暴露。
type Storage struct {
	Dir      string
	URLPath  string
	MaxBytes int64

	now func() time.Time
}

// NewStorage 创建磁盘存储，maxBytes<=0 时使用默认上限。
func NewStorage(dir, urlPath string, maxBytes int64) *Storage {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Storage{Dir: dir, URLPath: "/" + strings.Trim(urlPath, "/"), MaxBytes: maxBytes, now: time.Now}
}

// SaveAll 校验并保存表单中的全部文件，返回字段名到访问路径的映射。
// 任一文件失败时已保存的文件会被删除。
func (s *Storage) SaveAll(files map[string][]*multipart.FileHeader) (form.Uploads, error) {
	uploads := form.Uploads{}
	if len(files) == 0 {
		return uploads, nil
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	fields := make([]string, 0, len(files))
	for field := range files {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var saved []string
	for _, field := range fields {
		for _, header := range files[field] {
			if header == nil || header.Size == 0 && header.Filename == "" {
				continue
			}
			name, err := s.save(header)
			if err != nil {
				s.remove(saved)
				return nil, fmt.Errorf("%s: %w", field, err)
			}
			saved = append(saved, name)
			uploads.Add(field, path.Join(s.URLPath, name))
		}
	}
	return uploads, nil
}

func (s *Storage) save(header *multipart.FileHeader) (string, error) {
	if header.Size > s.MaxBytes {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	_, format, err := image.DecodeConfig(src)
	if err != nil {
		return "", ErrNotImage
	}
	ext, ok := extensions[format]
	if !ok {
		return "", ErrNotImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	// 生成唯一文件名
	name := fmt.Sprintf("%d-%s%s", s.clock().UnixMilli(), uuid.New().String(), ext)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, io.LimitReader(src, s.MaxBytes+1)); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}
	return name, nil
}

func (s *Storage) remove(names []string) {
	for _, name := range names {
		_ = os.Remove(filepath.Join(s.Dir, name))
	}
}

func (s *Storage) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
