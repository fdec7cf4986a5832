package content

import "time"

const (
	// DefaultSiteLogo is used whenever the home document carries no logo.
	DefaultSiteLogo = "/images/default-logo.png"

	StoryContentImages = "images"
	StoryContentEmbed  = "embed"

	DefaultStoryTag         = "Story"
	DefaultStoryTagColor    = "bg-indigo-600 text-white"
	DefaultTestimonialImage = "/images/default-testimonial.jpg"

	// HomeStatCount is the fixed number of stat tiles on the home page.
	HomeStatCount = 4

	maxStories      = 10
	maxTestimonials = 10
)

// HomePage is the landing page singleton. It also owns the site logo and the
// footer shared by every public page.
type HomePage struct {
	Meta
	SiteLogo        string          `json:"siteLogo"`
	Hero            HomeHero        `json:"hero"`
	FeaturedStories FeaturedStories `json:"featuredStories"`
	Stats           []Stat          `json:"stats"`
	Testimonials    Testimonials    `json:"testimonials"`
	Footer          Footer          `json:"footer"`
}

// HomeHero is the landing banner with two call-to-action buttons.
type HomeHero struct {
	BackgroundImage string `json:"backgroundImage"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Button1         Link   `json:"button1"`
	Button2         Link   `json:"button2"`
}

// FeaturedStories groups the story cards.
type FeaturedStories struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Stories     []Story `json:"stories"`
	ViewAllLink Link    `json:"viewAllLink"`
}

// Story is either an image carousel or an embedded video.
type Story struct {
	ContentType string    `json:"contentType"`
	Images      []string  `json:"images"`
	EmbedLink   string    `json:"embedLink"`
	Tag         string    `json:"tag"`
	TagColor    string    `json:"tagColor"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Stat is one figure tile.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Testimonials groups quotes from the community.
type Testimonials struct {
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	Testimonials []Testimonial `json:"testimonials"`
}

// Testimonial is a single quote.
type Testimonial struct {
	Quote  string `json:"quote"`
	Name   string `json:"name"`
	Origin string `json:"origin"`
	Image  string `json:"image"`
}

// DefaultHomePage returns the document created on first access.
func DefaultHomePage() *HomePage {
	return &HomePage{
		SiteLogo: DefaultSiteLogo,
		Hero: HomeHero{
			BackgroundImage: "/images/hero-background.jpg",
			Title:           "Welcome to PMAFA",
			Subtitle:        "Empowering migrant families through support, community and advocacy.",
			Button1:         Link{Text: "Learn More", Link: "/about", Icon: "fas fa-info-circle"},
			Button2:         Link{Text: "Contact Us", Link: "/contact", Icon: "fas fa-hands-helping"},
		},
		FeaturedStories: FeaturedStories{
			Title:    "Our Impact Stories",
			Subtitle: "Discover how we're making a difference in the community.",
			Stories: []Story{{
				ContentType: StoryContentImages,
				Images:      []string{},
				Tag:         "Community",
				TagColor:    DefaultStoryTagColor,
				Title:       "Community Outreach Program",
				Description: "Our latest outreach program helped families with essential supplies.",
				Link:        "#",
			}},
			ViewAllLink: Link{Text: "View All Stories", Link: "/gallery", Icon: "fas fa-arrow-right"},
		},
		Stats: []Stat{
			{Value: "1000+", Label: "Families Helped"},
			{Value: "50+", Label: "Volunteers Engaged"},
			{Value: "20+", Label: "Barangays Reached"},
			{Value: "10+", Label: "Programs Launched"},
		},
		Testimonials: Testimonials{
			Title:    "What People Say",
			Subtitle: "Hear from those impacted by our work.",
			Testimonials: []Testimonial{{
				Quote:  "This organization supported my family during tough times.",
				Name:   "Community Member",
				Origin: "Member",
				Image:  DefaultTestimonialImage,
			}},
		},
		Footer: Footer{
			OrgName:   "PMAFA",
			Address:   "123 Community Avenue",
			Email:     "info@pmafa.org",
			Phone:     "(555) 123-4567",
			Copyright: copyright("PMAFA"),
		},
	}
}

func (p *HomePage) Kind() Kind { return KindHome }

func (p *HomePage) Normalize() bool {
	changed := fillDefault(&p.SiteLogo, DefaultSiteLogo)
	for i := range p.FeaturedStories.Stories {
		story := &p.FeaturedStories.Stories[i]
		if story.ContentType != StoryContentEmbed && story.ContentType != StoryContentImages {
			story.ContentType = StoryContentImages
			changed = true
		}
		if story.Images == nil {
			story.Images = []string{}
			changed = true
		}
	}
	return changed
}

func (p *HomePage) Validate() error {
	if n := len(p.FeaturedStories.Stories); n < 1 || n > maxStories {
		return invalid("featuredStories.stories", "Stories must have between 1 and 10 entries.")
	}
	for _, story := range p.FeaturedStories.Stories {
		if story.ContentType != StoryContentImages && story.ContentType != StoryContentEmbed {
			return invalid("featuredStories.stories.contentType", "Story content type must be images or embed.")
		}
	}
	if n := len(p.Testimonials.Testimonials); n < 1 || n > maxTestimonials {
		return invalid("testimonials.testimonials", "Testimonials must have between 1 and 10 entries.")
	}
	return nil
}
