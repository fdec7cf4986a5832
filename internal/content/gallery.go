package content

import (
	"slices"
	"time"
)

const (
	DefaultGalleryImage    = "/images/placeholder-gallery.jpg"
	DefaultGalleryCategory = "community"
)

// GalleryPage holds the curated photo gallery.
type GalleryPage struct {
	Meta
	Hero           Hero           `json:"hero"`
	GallerySection GallerySection `json:"gallerySection"`
	Footer         Footer         `json:"footer"`
}

// GallerySection holds categories and their items.
type GallerySection struct {
	Title      string        `json:"title"`
	Subtitle   string        `json:"subtitle"`
	Categories []Category    `json:"categories"`
	Items      []GalleryItem `json:"items"`
}

// Category groups gallery items; names are stored lower-case.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// GalleryItem is one picture.
type GalleryItem struct {
	Image       string    `json:"image"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DefaultGalleryPage returns the document created on first access.
func DefaultGalleryPage() *GalleryPage {
	return &GalleryPage{
		Hero: Hero{
			BackgroundImage: "/images/gallery-hero.jpg",
			Title:           "Our Gallery",
			Subtitle:        "Celebrating the vibrant moments...",
			ButtonText:      "View Gallery",
			ButtonLink:      "#gallery",
		},
		GallerySection: GallerySection{
			Title:      "Moments That Matter",
			Subtitle:   "Explore our collection of memories...",
			Categories: DefaultGalleryCategories(),
			Items:      []GalleryItem{},
		},
		Footer: Footer{
			OrgName:     "PMAFA Gallery",
			Description: "Gallery description for footer.",
			Address:     "123 Community Avenue\nNew York, NY 10001",
			Email:       "info@pmafa.org",
			Phone:       "(555) 123-4567",
			Copyright:   copyright("PMAFA"),
		},
	}
}

// DefaultGalleryCategories is used when an edit submits no category at all.
func DefaultGalleryCategories() []Category {
	return []Category{{Name: DefaultGalleryCategory, Subcategories: []string{}}}
}

func (p *GalleryPage) Kind() Kind { return KindGallery }

func (p *GalleryPage) Normalize() bool {
	changed := false
	if len(p.GallerySection.Categories) == 0 {
		p.GallerySection.Categories = DefaultGalleryCategories()
		changed = true
	}
	for i := range p.GallerySection.Categories {
		category := &p.GallerySection.Categories[i]
		if name := NormalizeName(category.Name); name != category.Name {
			category.Name = name
			changed = true
		}
		if category.Subcategories == nil {
			category.Subcategories = []string{}
			changed = true
		}
	}
	if p.GallerySection.Items == nil {
		p.GallerySection.Items = []GalleryItem{}
		changed = true
	}
	return changed
}

func (p *GalleryPage) Validate() error {
	seen := make(map[string]struct{}, len(p.GallerySection.Categories))
	for _, category := range p.GallerySection.Categories {
		if category.Name == "" {
			return invalid("gallerySection.categories", "Category names must be unique and non-empty.")
		}
		if _, dup := seen[category.Name]; dup {
			return invalid("gallerySection.categories", "Category names must be unique and non-empty.")
		}
		seen[category.Name] = struct{}{}
	}
	for _, item := range p.GallerySection.Items {
		if !p.AcceptsItem(item.Category, item.Subcategory) {
			return invalid("gallerySection.items", "Each gallery item must have a valid category and subcategory.")
		}
	}
	return nil
}

// AcceptsItem reports whether category and optional subcategory are known.
func (p *GalleryPage) AcceptsItem(category, subcategory string) bool {
	for _, c := range p.GallerySection.Categories {
		if c.Name != category {
			continue
		}
		return subcategory == "" || slices.Contains(c.Subcategories, subcategory)
	}
	return false
}
