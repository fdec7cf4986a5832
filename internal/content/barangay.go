package content

import "fmt"

const (
	DefaultBarangayHeroImage = "/images/default-barangay-hero.jpg"
	DefaultOfficerImage      = "https://via.placeholder.com/150/cccccc/888888?text=No+Image"
)

// BarangayPage lists the local chapters and their officers.
type BarangayPage struct {
	Meta
	Hero        Hero                `json:"hero"`
	MainSection BarangayMainSection `json:"mainSection"`
}

// BarangayMainSection holds the barangay list.
type BarangayMainSection struct {
	Title     string     `json:"title"`
	Subtitle  string     `json:"subtitle"`
	Barangays []Barangay `json:"barangays"`
}

// Barangay is one local chapter.
type Barangay struct {
	Name        string   `json:"name"`
	Officers    Officers `json:"officers"`
	Coordinator *Person  `json:"coordinator,omitempty"`
}

// Officers are the elected roles of a barangay chapter.
type Officers struct {
	President        string     `json:"president"`
	PresidentImage   string     `json:"presidentImage"`
	VicePresident    string     `json:"vicePresident"`
	Secretary        string     `json:"secretary"`
	AsstSecretary    string     `json:"asstSecretary"`
	Treasurer        string     `json:"treasurer"`
	AsstTreasurer    string     `json:"asstTreasurer"`
	Auditor          string     `json:"auditor"`
	AsstAuditor      string     `json:"asstAuditor"`
	BusinessManager  string     `json:"businessManager"`
	AsstBusManager   string     `json:"asstBusManager"`
	PIO              string     `json:"pio"`
	AsstPIO          string     `json:"asstPio"`
	Muse             string     `json:"muse"`
	Escort           string     `json:"escort"`
	BoardOfDirectors []Director `json:"boardOfDirectors"`
}

// Director is a board seat, usually one per purok.
type Director struct {
	Title string `json:"title"`
	Name  string `json:"name"`
}

// DefaultOfficers is the officer roster of a newly added barangay.
func DefaultOfficers() Officers {
	return Officers{
		President:        "President Name Not Set",
		PresidentImage:   DefaultOfficerImage,
		VicePresident:    "VP Name Not Set",
		Secretary:        "Secretary Name Not Set",
		AsstSecretary:    "Asst. Secretary Name Not Set",
		Treasurer:        "Treasurer Name Not Set",
		AsstTreasurer:    "Asst. Treasurer Name Not Set",
		Auditor:          "Auditor Name Not Set",
		AsstAuditor:      "Asst. Auditor Name Not Set",
		BusinessManager:  "Bus. Manager Name Not Set",
		AsstBusManager:   "Asst. Bus. Manager Name Not Set",
		PIO:              "PIO Name Not Set",
		AsstPIO:          "Asst. PIO Name Not Set",
		Muse:             "Muse Name Not Set",
		Escort:           "Escort Name Not Set",
		BoardOfDirectors: []Director{},
	}
}

// DefaultBarangayPage returns the document created on first access.
func DefaultBarangayPage() *BarangayPage {
	uno := DefaultOfficers()
	uno.President = "Juan Dela Cruz"
	uno.PresidentImage = "https://via.placeholder.com/150/007bff/ffffff?text=JDC"
	uno.VicePresident = "Maria Santos"
	uno.Secretary = "Pedro Reyes"
	uno.BoardOfDirectors = []Director{
		{Title: "Purok Masipag Leader", Name: "Ana Gomez"},
		{Title: "Purok Matiyaga Leader", Name: "Luis Aquino"},
	}

	dos := DefaultOfficers()
	dos.President = "Clara Aguas"
	dos.PresidentImage = "https://via.placeholder.com/150/28a745/ffffff?text=CA"
	dos.VicePresident = "Antonio Luna"

	return &BarangayPage{
		Hero: Hero{
			Title:           "Barangay Leadership",
			Subtitle:        "Discover the local leaders who serve our communities.",
			ButtonText:      "View Barangays",
			BackgroundImage: DefaultBarangayHeroImage,
		},
		MainSection: BarangayMainSection{
			Title:    "Our Barangays",
			Subtitle: "Explore the leadership and structure of each local barangay.",
			Barangays: []Barangay{
				{Name: "Sample Barangay Uno", Officers: uno},
				{Name: "Sample Barangay Dos", Officers: dos},
			},
		},
	}
}

func (p *BarangayPage) Kind() Kind { return KindBarangay }

func (p *BarangayPage) Normalize() bool {
	changed := fillDefault(&p.Hero.BackgroundImage, DefaultBarangayHeroImage)
	if p.MainSection.Barangays == nil {
		p.MainSection.Barangays = []Barangay{}
		changed = true
	}
	for i := range p.MainSection.Barangays {
		officers := &p.MainSection.Barangays[i].Officers
		changed = fillDefault(&officers.PresidentImage, DefaultOfficerImage) || changed
		if officers.BoardOfDirectors == nil {
			officers.BoardOfDirectors = []Director{}
			changed = true
		}
	}
	return changed
}

func (p *BarangayPage) Validate() error {
	for i, barangay := range p.MainSection.Barangays {
		if barangay.Name == "" {
			return invalid(fmt.Sprintf("mainSection.barangays[%d].name", i), "Barangay name is required.")
		}
	}
	return nil
}
