package content

const (
	DefaultServiceIcon  = "fas fa-concierge-bell"
	DefaultServiceImage = "/images/placeholder-service.jpg"

	maxServices = 12
)

// ServicesPage lists the programs offered by the organisation.
type ServicesPage struct {
	Meta
	Hero            Hero            `json:"hero"`
	ServicesSection ServicesSection `json:"servicesSection"`
}

// ServicesSection holds the service cards.
type ServicesSection struct {
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Services []Service `json:"services"`
}

// Service is one service card.
type Service struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// DefaultServicesPage returns the document created on first access.
func DefaultServicesPage() *ServicesPage {
	return &ServicesPage{
		Hero: Hero{
			BackgroundImage: "/images/services-hero.jpg",
			Title:           "Our Services",
			Subtitle:        "Default subtitle for services.",
			ButtonText:      "Explore Services",
			ButtonLink:      "#services",
		},
		ServicesSection: ServicesSection{
			Title:    "How We Help",
			Subtitle: "Default subtitle for how we help.",
			Services: []Service{
				{Icon: "fas fa-passport", Title: "Migration Support", Image: "/images/migration.jpg", Description: "Expert guidance on visas, documentation, and resettlement for a seamless transition.", Link: "/contact"},
				{Icon: "fas fa-heart", Title: "Family Counseling", Image: "/images/counseling.jpg", Description: "Professional support to strengthen family bonds and navigate emotional challenges.", Link: "/contact"},
				{Icon: "fas fa-users", Title: "Community Events", Image: "/images/events.jpg", Description: "Engaging activities to foster connection, cultural integration, and community building.", Link: "/contact"},
			},
		},
	}
}

func (p *ServicesPage) Kind() Kind { return KindServices }

func (p *ServicesPage) Normalize() bool {
	return fillDefault(&p.Hero.BackgroundImage, "/images/services-hero.jpg")
}

func (p *ServicesPage) Validate() error {
	if n := len(p.ServicesSection.Services); n < 1 || n > maxServices {
		return invalid("servicesSection.services", "Services must have between 1 and 12 entries.")
	}
	return nil
}
