package editor

import (
	"slices"
	"time"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/form"
)

// ApplyServices merges the services form into page.
func ApplyServices(page *content.ServicesPage, sub *form.Submission) {
	applyHero(&page.Hero, sub, "")

	section := &page.ServicesSection
	section.Title = sub.Keep("servicesSection.title", section.Title)
	section.Subtitle = sub.Keep("servicesSection.subtitle", section.Subtitle)

	const (
		title       = "servicesSection.services[%d].title"
		description = "servicesSection.services[%d].description"
		icon        = "servicesSection.services[%d].icon"
		link        = "servicesSection.services[%d].link"
		image       = "servicesSection.services[%d].image"
		upload      = "serviceImage_%d"
	)
	n := form.Count(func(i int) bool { return sub.AnyIndexed(i, title, description) })

	services := make([]content.Service, 0, n)
	for i := 0; i < n; i++ {
		var prev content.Service
		if i < len(section.Services) {
			prev = section.Services[i]
		}
		services = append(services, content.Service{
			Icon:        sub.NonEmpty(form.Key(icon, i), firstNonEmpty(prev.Icon, content.DefaultServiceIcon)),
			Title:       sub.Get(form.Key(title, i)),
			Description: sub.Get(form.Key(description, i)),
			Image:       firstNonEmpty(sub.Uploads().First(form.Key(upload, i)), sub.Keep(form.Key(image, i), prev.Image), content.DefaultServiceImage),
			Link:        sub.NonEmpty(form.Key(link, i), firstNonEmpty(prev.Link, "#")),
		})
	}
	section.Services = services
}

// ApplyGallery merges the gallery form into page. Items whose category or
// subcategory is not declared are dropped.
func ApplyGallery(page *content.GalleryPage, sub *form.Submission, now time.Time) {
	applyHero(&page.Hero, sub, "")

	section := &page.GallerySection
	section.Title = sub.Keep("gallerySection.title", section.Title)
	section.Subtitle = sub.Keep("gallerySection.subtitle", section.Subtitle)
	section.Categories = rebuildCategories(sub)

	const (
		title       = "gallerySection.items[%d].title"
		description = "gallerySection.items[%d].description"
		category    = "gallerySection.items[%d].category"
		subcategory = "gallerySection.items[%d].subcategory"
		image       = "gallerySection.items[%d].image"
		upload      = "galleryImage_%d"
	)
	n := form.Count(func(i int) bool { return sub.AnyIndexed(i, title, description, category) })

	items := make([]content.GalleryItem, 0, n)
	for i := 0; i < n; i++ {
		var prev content.GalleryItem
		if i < len(section.Items) {
			prev = section.Items[i]
		}
		item := content.GalleryItem{
			Title:       sub.Get(form.Key(title, i)),
			Description: sub.Get(form.Key(description, i)),
			Category:    content.NormalizeName(sub.Get(form.Key(category, i))),
			Subcategory: content.NormalizeName(sub.Get(form.Key(subcategory, i))),
			Image:       firstNonEmpty(sub.Uploads().First(form.Key(upload, i)), sub.Keep(form.Key(image, i), prev.Image), content.DefaultGalleryImage),
			CreatedAt:   prev.CreatedAt,
		}
		if item.Category == "" || !page.AcceptsItem(item.Category, item.Subcategory) {
			continue
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = now
		}
		items = append(items, item)
	}
	section.Items = items

	applyFooter(&page.Footer, sub)
}

func rebuildCategories(sub *form.Submission) []content.Category {
	const (
		name          = "gallerySection.categories[%d].name"
		subcategories = "gallerySection.categories[%d].subcategories"
	)
	var categories []content.Category
	for i := 0; ; i++ {
		raw := sub.Get(form.Key(name, i))
		if raw == "" {
			break
		}
		categoryName := content.NormalizeName(raw)
		if categoryName == "" || slices.ContainsFunc(categories, func(c content.Category) bool { return c.Name == categoryName }) {
			continue
		}
		subs := []string{}
		for _, s := range sub.Values(form.Key(subcategories, i)) {
			s = content.NormalizeName(s)
			if s != "" && !slices.Contains(subs, s) {
				subs = append(subs, s)
			}
		}
		categories = append(categories, content.Category{Name: categoryName, Subcategories: subs})
	}
	if len(categories) == 0 {
		return content.DefaultGalleryCategories()
	}
	return categories
}

// ApplyContact merges the contact form into page; phone and email links are
// derived from the submitted number and address.
func ApplyContact(page *content.ContactPage, sub *form.Submission) {
	applyHero(&page.Hero, sub, content.DefaultContactHeroImage)

	page.FormSection.Title = sub.Keep("formSection.title", page.FormSection.Title)
	page.FormSection.Subtitle = sub.Keep("formSection.subtitle", page.FormSection.Subtitle)
	page.FormSection.FormRecipientEmail = sub.Keep("formSection.formRecipientEmail", page.FormSection.FormRecipientEmail)

	info := &page.InfoSection
	info.Title = sub.Keep("infoSection.title", info.Title)
	info.Subtitle = sub.Keep("infoSection.subtitle", info.Subtitle)
	info.Address.Lines = sub.Keep("infoSection.address.lines", info.Address.Lines)
	info.Phone.Number = sub.Keep("infoSection.phone.number", info.Phone.Number)
	info.Phone.Link = content.PhoneLink(info.Phone.Number)
	info.Email.Address = sub.Keep("infoSection.email.address", info.Email.Address)
	info.Email.Link = content.EmailLink(info.Email.Address)
	info.MapEmbedURL = sub.Keep("infoSection.mapEmbedUrl", info.MapEmbedURL)

	applyFooter(&page.Footer, sub)
}

// ApplyTextPage merges the vision or mission form.
func ApplyTextPage(page *content.TextPage, sub *form.Submission) {
	applyHero(&page.Hero, sub, "")
	page.Content.Title = sub.Keep("content.title", page.Content.Title)
	page.Content.Body = sub.Keep("content.body", page.Content.Body)
}

// ApplyListPage merges the goals or objectives form. The list is replaced by
// the submitted content.<kind> values; an absent list empties it.
func ApplyListPage(page *content.ListPage, sub *form.Submission) {
	applyHero(&page.Hero, sub, "")
	page.Content.Title = sub.Keep("content.title", page.Content.Title)
	page.Content.Items = sub.TrimmedValues("content." + string(page.Kind()))
}

// ApplyHistory merges the history form; timeline events are rebuilt from events[i].*.
func ApplyHistory(page *content.HistoryPage, sub *form.Submission) {
	applyHero(&page.Hero, sub, "")
	page.Content.Title = sub.Keep("content.title", page.Content.Title)

	const (
		year        = "events[%d].year"
		title       = "events[%d].title"
		description = "events[%d].description"
	)
	n := form.Count(func(i int) bool { return sub.AnyIndexed(i, year, title, description) })
	events := make([]content.TimelineEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, content.TimelineEvent{
			Year:        sub.Get(form.Key(year, i)),
			Title:       sub.Get(form.Key(title, i)),
			Description: sub.Get(form.Key(description, i)),
		})
	}
	page.Content.TimelineEvents = events
}
