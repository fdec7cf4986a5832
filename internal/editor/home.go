package editor

import (
	"time"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/form"
)

const (
	storyTitle       = "featuredStories.stories[%d].title"
	storyDescription = "featuredStories.stories[%d].description"
	storyContentType = "featuredStories.stories[%d].contentType"
	storyEmbedLink   = "featuredStories.stories[%d].embedLink"
	storyKeptImages  = "existingStoryImages[%d]"
	storyNewImages   = "newStoryImages[%d]"

	testimonialQuote  = "testimonials.testimonials[%d].quote"
	testimonialName   = "testimonials.testimonials[%d].name"
	testimonialOrigin = "testimonials.testimonials[%d].origin"
	testimonialImage  = "testimonials.testimonials[%d].image"
	testimonialUpload = "testimonialImage_%d"
)

// ApplyHome merges the home page form into page.
func ApplyHome(page *content.HomePage, sub *form.Submission, now time.Time) {
	uploads := sub.Uploads()

	page.SiteLogo = firstNonEmpty(uploads.First(FieldSiteLogo), page.SiteLogo, content.DefaultSiteLogo)

	hero := &page.Hero
	hero.BackgroundImage = firstNonEmpty(uploads.First(FieldHeroBackground), hero.BackgroundImage)
	hero.Title = sub.Keep("hero.title", hero.Title)
	hero.Subtitle = sub.Keep("hero.subtitle", hero.Subtitle)
	hero.Button1.Text = sub.Keep("hero.button1.text", hero.Button1.Text)
	hero.Button1.Link = sub.Keep("hero.button1.link", hero.Button1.Link)
	hero.Button2.Text = sub.Keep("hero.button2.text", hero.Button2.Text)
	hero.Button2.Link = sub.Keep("hero.button2.link", hero.Button2.Link)

	stories := &page.FeaturedStories
	stories.Title = sub.Keep("featuredStories.title", stories.Title)
	stories.Subtitle = sub.Keep("featuredStories.subtitle", stories.Subtitle)
	stories.ViewAllLink.Text = sub.Keep("featuredStories.viewAllLink.text", stories.ViewAllLink.Text)
	stories.Stories = rebuildStories(stories.Stories, sub, now)

	page.Stats = rebuildStats(page.Stats, sub)

	testimonials := &page.Testimonials
	testimonials.Title = sub.Keep("testimonials.title", testimonials.Title)
	testimonials.Subtitle = sub.Keep("testimonials.subtitle", testimonials.Subtitle)
	testimonials.Testimonials = rebuildTestimonials(testimonials.Testimonials, sub)

	page.Footer.OrgName = sub.Keep("footer.orgName", page.Footer.OrgName)
	page.Footer.Address = sub.Keep("footer.address", page.Footer.Address)
	page.Footer.Email = sub.Keep("footer.email", page.Footer.Email)
	page.Footer.Phone = sub.Keep("footer.phone", page.Footer.Phone)
	page.Footer.Copyright = sub.Keep("footer.copyright", page.Footer.Copyright)
}

func rebuildStories(existing []content.Story, sub *form.Submission, now time.Time) []content.Story {
	uploads := sub.Uploads()
	n := form.Count(func(i int) bool {
		return sub.AnyIndexed(i, storyTitle, storyDescription) ||
			len(uploads.All(form.Key(storyNewImages, i))) > 0 ||
			len(sub.TrimmedValues(form.Key(storyKeptImages, i))) > 0 ||
			sub.Get(form.Key(storyEmbedLink, i)) != ""
	})

	out := make([]content.Story, 0, n)
	for i := 0; i < n; i++ {
		var prev content.Story
		if i < len(existing) {
			prev = existing[i]
		}

		contentType := sub.NonEmpty(form.Key(storyContentType, i), content.StoryContentImages)
		if contentType != content.StoryContentEmbed {
			contentType = content.StoryContentImages
		}

		images := []string{}
		embedLink := ""
		if contentType == content.StoryContentImages {
			images = append(images, sub.TrimmedValues(form.Key(storyKeptImages, i))...)
			images = append(images, uploads.All(form.Key(storyNewImages, i))...)
		} else {
			embedLink = sub.Get(form.Key(storyEmbedLink, i))
		}

		title := sub.Get(form.Key(storyTitle, i))
		description := sub.Get(form.Key(storyDescription, i))
		if title == "" && description == "" && len(images) == 0 && embedLink == "" {
			continue
		}

		createdAt := prev.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}

		out = append(out, content.Story{
			ContentType: contentType,
			Images:      images,
			EmbedLink:   embedLink,
			Tag:         firstNonEmpty(prev.Tag, content.DefaultStoryTag),
			TagColor:    firstNonEmpty(prev.TagColor, content.DefaultStoryTagColor),
			Link:        firstNonEmpty(prev.Link, "#"),
			Title:       title,
			Description: description,
			CreatedAt:   createdAt,
		})
	}
	return out
}

func rebuildStats(existing []content.Stat, sub *form.Submission) []content.Stat {
	out := make([]content.Stat, content.HomeStatCount)
	for i := range out {
		value, label := "0", "Stat"
		if i < len(existing) {
			value = firstNonEmpty(existing[i].Value, value)
			label = firstNonEmpty(existing[i].Label, label)
		}
		out[i] = content.Stat{
			Value: sub.Keep(form.Key("stats[%d].value", i), value),
			Label: sub.Keep(form.Key("stats[%d].label", i), label),
		}
	}
	return out
}

func rebuildTestimonials(existing []content.Testimonial, sub *form.Submission) []content.Testimonial {
	uploads := sub.Uploads()
	n := form.Count(func(i int) bool {
		return sub.AnyIndexed(i, testimonialQuote, testimonialName) ||
			uploads.First(form.Key(testimonialUpload, i)) != ""
	})

	out := make([]content.Testimonial, 0, n)
	for i := 0; i < n; i++ {
		var prev content.Testimonial
		if i < len(existing) {
			prev = existing[i]
		}
		uploaded := uploads.First(form.Key(testimonialUpload, i))
		quote := sub.Get(form.Key(testimonialQuote, i))
		name := sub.Get(form.Key(testimonialName, i))
		if quote == "" && name == "" && uploaded == "" {
			continue
		}
		out = append(out, content.Testimonial{
			Image:  firstNonEmpty(uploaded, sub.Keep(form.Key(testimonialImage, i), prev.Image), content.DefaultTestimonialImage),
			Quote:  quote,
			Name:   name,
			Origin: sub.Get(form.Key(testimonialOrigin, i)),
		})
	}
	return out
}
