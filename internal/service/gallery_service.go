package service

import (
	"context"
	"sort"
	"time"

	"github.com/pmafa/internal/content"
)

// StoriesCategory 是首页故事图片在画廊中的分类。
const StoriesCategory = "stories"

// GalleryView 是公开画廊页所需的数据：画廊文档本身，加上合并后的条目与分类。
type GalleryView struct {
	Page       *content.GalleryPage
	Items      []content.GalleryItem
	Categories []content.Category
}

// GalleryService 组合画廊条目与首页故事图片。
type GalleryService struct {
	pages *PageService
}

// NewGalleryService 构造 GalleryService。
func NewGalleryService(pages *PageService) *GalleryService {
	return &GalleryService{pages: pages}
}

// PublicGallery 返回按时间倒序排列的画廊条目，故事图片以 stories 分类并入。
func (s *GalleryService) PublicGallery(ctx context.Context) (*GalleryView, error) {
	gallery, err := s.pages.Gallery(ctx)
	if err != nil {
		return nil, err
	}

	var stories []content.Story
	var home content.HomePage
	found, err := s.pages.store.Load(ctx, content.KindHome, &home)
	if err != nil {
		return nil, err
	}
	if found {
		stories = home.FeaturedStories.Stories
	}

	items := append([]content.GalleryItem{}, gallery.GallerySection.Items...)
	items = append(items, storyItems(stories, home.UpdatedAt)...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return &GalleryView{
		Page:       gallery,
		Items:      items,
		Categories: withStoriesCategory(gallery.GallerySection.Categories),
	}, nil
}

func storyItems(stories []content.Story, fallback time.Time) []content.GalleryItem {
	var items []content.GalleryItem
	for _, story := range stories {
		createdAt := story.CreatedAt
		if createdAt.IsZero() {
			createdAt = fallback
		}
		for _, image := range story.Images {
			items = append(items, content.GalleryItem{
				Image:       image,
				Title:       firstNonEmpty(story.Title, "Story Image"),
				Description: firstNonEmpty(story.Description, "Image from a featured story"),
				Category:    StoriesCategory,
				CreatedAt:   createdAt,
			})
		}
	}
	return items
}

func withStoriesCategory(categories []content.Category) []content.Category {
	out := make([]content.Category, 0, len(categories)+1)
	seen := make(map[string]struct{}, len(categories)+1)
	for _, c := range append(append([]content.Category{}, categories...), content.Category{Name: StoriesCategory, Subcategories: []string{}}) {
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}
		out = append(out, c)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
