package content

const (
	DefaultLeadershipHeroImage = "/images/default-leadership-hero.jpg"
	DefaultMayorImage          = "https://via.placeholder.com/256x256?text=Mayor"
	DefaultPresidentImage      = "https://via.placeholder.com/256x256?text=President"
	DefaultMemberImage         = "https://via.placeholder.com/128x128?text=Person"

	// PersonPathPrefix is the public route prefix of person detail pages.
	PersonPathPrefix = "/administration/person/"
)

// LeadershipPage presents the executive officers.
type LeadershipPage struct {
	Meta
	Hero              Hero              `json:"hero"`
	LeadershipSection LeadershipSection `json:"leadershipSection"`
}

// LeadershipSection holds the hierarchy shown on the leadership page.
type LeadershipSection struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Mayor       Person   `json:"mayor"`
	President   Person   `json:"president"`
	TeamMembers []Person `json:"teamMembers"`
}

// Person is anyone with a detail page. Link is the public detail path.
type Person struct {
	Name         string `json:"name"`
	Title        string `json:"title"`
	Bio          string `json:"bio"`
	Image        string `json:"image"`
	Link         string `json:"link"`
	Email        string `json:"email"`
	Tenure       string `json:"tenure"`
	Achievements string `json:"achievements"`
}

// DefaultLeadershipPage returns the document created on first access.
func DefaultLeadershipPage() *LeadershipPage {
	return &LeadershipPage{
		Hero: Hero{
			BackgroundImage: DefaultLeadershipHeroImage,
			Title:           "Our Leadership",
			Subtitle:        "Meet the dedicated team...",
			ButtonText:      "Meet the Team",
		},
		LeadershipSection: LeadershipSection{
			Title:    "Leadership Hierarchy",
			Subtitle: "Our leadership team works tirelessly...",
			Mayor: Person{
				Name:         "Mayor John Doe",
				Title:        "City Mayor",
				Bio:          "Mayor John Doe oversees PMAFA’s strategic initiatives...",
				Image:        DefaultMayorImage,
				Link:         PersonPathPrefix + "mayor-john-doe",
				Email:        "mayor@example.com",
				Tenure:       "Since 2018",
				Achievements: "Led city-wide support initiatives.",
			},
			President: Person{
				Name:         "Ceres Fauna",
				Title:        "PMAFA President",
				Bio:          "President bio goes here.",
				Image:        DefaultPresidentImage,
				Link:         PersonPathPrefix + "pmafa-ceres",
				Email:        "president@example.com",
				Tenure:       "Since 2019",
				Achievements: "Expanded program reach.",
			},
			TeamMembers: []Person{
				{Name: "Dr. Anna Reyes", Title: "Executive Director", Bio: "Dr. Reyes leads PMAFA’s operations...", Image: "https://via.placeholder.com/128x128?text=Anna+Reyes", Link: PersonPathPrefix + "anna-reyes", Email: "member@example.com", Tenure: "N/A", Achievements: "Key achievements not listed."},
				{Name: "Mark Santos", Title: "Community Outreach Coordinator", Bio: "Mark connects families with resources...", Image: "https://via.placeholder.com/128x128?text=Mark+Santos", Link: PersonPathPrefix + "mark-santos", Email: "member@example.com", Tenure: "N/A", Achievements: "Key achievements not listed."},
				{Name: "Lila Torres", Title: "Counseling Specialist", Bio: "Lila provides emotional support...", Image: "https://via.placeholder.com/128x128?text=Lila+Torres", Link: PersonPathPrefix + "lila-torres", Email: "member@example.com", Tenure: "N/A", Achievements: "Key achievements not listed."},
			},
		},
	}
}

func (p *LeadershipPage) Kind() Kind { return KindLeadership }

func (p *LeadershipPage) Normalize() bool {
	changed := fillDefault(&p.Hero.BackgroundImage, DefaultLeadershipHeroImage)
	if p.LeadershipSection.TeamMembers == nil {
		p.LeadershipSection.TeamMembers = []Person{}
		changed = true
	}
	return changed
}

func (p *LeadershipPage) Validate() error { return nil }
