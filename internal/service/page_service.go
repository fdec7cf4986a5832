package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/store"
)

// PageService 提供单例页面文档的读取、保存与重置。
type PageService struct {
	store  store.DocumentStore
	logger *zap.Logger
	now    func() time.Time
}

// NewPageService returns a new PageService instance.
func NewPageService(st store.DocumentStore, logger *zap.Logger) *PageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageService{store: st, logger: logger, now: time.Now}
}

func (s *PageService) Home(ctx context.Context) (*content.HomePage, error) {
	return getSingleton[*content.HomePage](ctx, s, content.KindHome)
}

func (s *PageService) Services(ctx context.Context) (*content.ServicesPage, error) {
	return getSingleton[*content.ServicesPage](ctx, s, content.KindServices)
}

func (s *PageService) Gallery(ctx context.Context) (*content.GalleryPage, error) {
	return getSingleton[*content.GalleryPage](ctx, s, content.KindGallery)
}

func (s *PageService) Contact(ctx context.Context) (*content.ContactPage, error) {
	return getSingleton[*content.ContactPage](ctx, s, content.KindContact)
}

func (s *PageService) Vision(ctx context.Context) (*content.TextPage, error) {
	return getSingleton[*content.TextPage](ctx, s, content.KindVision)
}

func (s *PageService) Mission(ctx context.Context) (*content.TextPage, error) {
	return getSingleton[*content.TextPage](ctx, s, content.KindMission)
}

func (s *PageService) Goals(ctx context.Context) (*content.ListPage, error) {
	return getSingleton[*content.ListPage](ctx, s, content.KindGoals)
}

func (s *PageService) Objectives(ctx context.Context) (*content.ListPage, error) {
	return getSingleton[*content.ListPage](ctx, s, content.KindObjectives)
}

func (s *PageService) History(ctx context.Context) (*content.HistoryPage, error) {
	return getSingleton[*content.HistoryPage](ctx, s, content.KindHistory)
}

func (s *PageService) Leadership(ctx context.Context) (*content.LeadershipPage, error) {
	return getSingleton[*content.LeadershipPage](ctx, s, content.KindLeadership)
}

func (s *PageService) Barangay(ctx context.Context) (*content.BarangayPage, error) {
	return getSingleton[*content.BarangayPage](ctx, s, content.KindBarangay)
}

// Document 按 kind 读取任意页面文档。
func (s *PageService) Document(ctx context.Context, kind content.Kind) (content.Document, error) {
	return s.loadSingleton(ctx, kind)
}

// Save 校验并持久化文档。校验失败返回 *content.ValidationError。
func (s *PageService) Save(ctx context.Context, doc content.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	doc.Touch(s.now())
	if err := s.store.Save(ctx, doc.Kind(), doc); err != nil {
		return err
	}
	s.logger.Info("page document saved", zap.String("kind", string(doc.Kind())))
	return nil
}

// Reset 用默认值覆盖文档。
func (s *PageService) Reset(ctx context.Context, kind content.Kind) error {
	defaults, err := content.New(kind)
	if err != nil {
		return err
	}
	defaults.Touch(s.now())
	if err := s.store.Save(ctx, kind, defaults); err != nil {
		return fmt.Errorf("reset %s: %w", kind, err)
	}
	s.logger.Info("page document reset", zap.String("kind", string(kind)))
	return nil
}

// UpdateLogo 仅替换首页文档中的站点 Logo。
func (s *PageService) UpdateLogo(ctx context.Context, logoPath string) error {
	if logoPath == "" {
		return errors.New("logo path is required")
	}
	home, err := s.Home(ctx)
	if err != nil {
		return err
	}
	home.SiteLogo = logoPath
	home.Touch(s.now())
	return s.store.Save(ctx, content.KindHome, home)
}

// SiteChrome 是每个页面共享的 Logo 与页脚。
type SiteChrome struct {
	SiteLogo string
	Footer   content.Footer
}

// SiteChrome 读取首页中的 Logo 与页脚；首页尚未创建或读取失败时返回默认值，不会创建文档。
func (s *PageService) SiteChrome(ctx context.Context) SiteChrome {
	defaults := content.DefaultHomePage()
	fallback := SiteChrome{SiteLogo: defaults.SiteLogo, Footer: defaults.Footer}

	var home content.HomePage
	found, err := s.store.Load(ctx, content.KindHome, &home)
	switch {
	case err != nil:
		s.logger.Error("failed to load site chrome", zap.Error(err))
		return fallback
	case !found:
		s.logger.Warn("home page document not found, using default chrome")
		return fallback
	}
	if home.SiteLogo == "" {
		home.SiteLogo = content.DefaultSiteLogo
	}
	return SiteChrome{SiteLogo: home.SiteLogo, Footer: home.Footer}
}
