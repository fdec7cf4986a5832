package content

const DefaultAboutHeroImage = "/images/about-hero.jpg"

// TextPage backs the vision and mission pages: a hero and one body of text.
type TextPage struct {
	Meta
	Hero    Hero        `json:"hero"`
	Content TextContent `json:"content"`

	kind Kind
}

// TextContent is a titled body; the body is rendered as Markdown.
type TextContent struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DefaultVisionPage returns the vision document created on first access.
func DefaultVisionPage() *TextPage {
	return &TextPage{
		kind: KindVision,
		Hero: Hero{
			BackgroundImage: DefaultAboutHeroImage,
			Title:           "Our Vision",
			Subtitle:        "A world where every migrant family thrives...",
		},
		Content: TextContent{
			Title: "Building a Better Future",
			Body:  "PMAFA envisions a global community where migrant families are empowered...",
		},
	}
}

// DefaultMissionPage returns the mission document created on first access.
func DefaultMissionPage() *TextPage {
	return &TextPage{
		kind: KindMission,
		Hero: Hero{
			BackgroundImage: DefaultAboutHeroImage,
			Title:           "Our Mission",
			Subtitle:        "To provide unwavering support...",
		},
		Content: TextContent{
			Title: "Empowering Families",
			Body:  "Our mission is to ensure that every migrant family...",
		},
	}
}

func (p *TextPage) Kind() Kind { return p.kind }

func (p *TextPage) Normalize() bool {
	return fillDefault(&p.Hero.BackgroundImage, DefaultAboutHeroImage)
}

func (p *TextPage) Validate() error { return nil }

// ListPage backs the goals and objectives pages: a hero and a list of lines.
type ListPage struct {
	Meta
	Hero    Hero        `json:"hero"`
	Content ListContent `json:"content"`

	kind Kind
}

// ListContent is a titled list of statements.
type ListContent struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DefaultGoalsPage returns the goals document created on first access.
func DefaultGoalsPage() *ListPage {
	return &ListPage{
		kind: KindGoals,
		Hero: Hero{
			BackgroundImage: DefaultAboutHeroImage,
			Title:           "Our Goals",
			Subtitle:        "To create sustainable support systems...",
		},
		Content: ListContent{
			Title: "Our Aspirations",
			Items: []string{
				"Expand access to migration resources globally.",
				"Strengthen community networks for migrant families.",
				"Advocate for inclusive policies and cultural acceptance.",
			},
		},
	}
}

// DefaultObjectivesPage returns the objectives document created on first access.
func DefaultObjectivesPage() *ListPage {
	return &ListPage{
		kind: KindObjectives,
		Hero: Hero{
			BackgroundImage: DefaultAboutHeroImage,
			Title:           "Our Objectives",
			Subtitle:        "To deliver targeted support...",
		},
		Content: ListContent{
			Title: "Our Focus Areas",
			Items: []string{
				"Provide tailored migration counseling services.",
				"Host community events to foster integration.",
				"Develop digital tools for resource access.",
			},
		},
	}
}

func (p *ListPage) Kind() Kind { return p.kind }

func (p *ListPage) Normalize() bool {
	changed := fillDefault(&p.Hero.BackgroundImage, DefaultAboutHeroImage)
	if p.Content.Items == nil {
		p.Content.Items = []string{}
		changed = true
	}
	return changed
}

func (p *ListPage) Validate() error { return nil }

// HistoryPage is the organisation timeline.
type HistoryPage struct {
	Meta
	Hero    Hero           `json:"hero"`
	Content HistoryContent `json:"content"`
}

// HistoryContent is a titled list of timeline events.
type HistoryContent struct {
	Title          string          `json:"title"`
	TimelineEvents []TimelineEvent `json:"timelineEvents"`
}

// TimelineEvent is one milestone; Year is free text such as "2010s".
type TimelineEvent struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// DefaultHistoryPage returns the document created on first access.
func DefaultHistoryPage() *HistoryPage {
	return &HistoryPage{
		Hero: Hero{
			BackgroundImage: DefaultAboutHeroImage,
			Title:           "Our History",
			Subtitle:        "A legacy of support...",
		},
		Content: HistoryContent{
			Title: "Our Journey",
			TimelineEvents: []TimelineEvent{
				{Year: "2010", Title: "Founded", Description: "PMAFA was established to support migrant families..."},
				{Year: "2015", Title: "Community Expansion", Description: "Launched community programs to promote cultural integration..."},
				{Year: "2020", Title: "Digital Outreach", Description: "Introduced online resources and virtual counseling..."},
			},
		},
	}
}

func (p *HistoryPage) Kind() Kind { return KindHistory }

func (p *HistoryPage) Normalize() bool {
	changed := fillDefault(&p.Hero.BackgroundImage, DefaultAboutHeroImage)
	if p.Content.TimelineEvents == nil {
		p.Content.TimelineEvents = []TimelineEvent{}
		changed = true
	}
	return changed
}

func (p *HistoryPage) Validate() error { return nil }
