// Package content defines the singleton page documents rendered by the public
// site and edited from the admin panel.
package content

import (
	"fmt"
	"strings"
	"time"
)

// Kind identifies one page singleton.
type Kind string

const (
	KindHome       Kind = "home"
	KindServices   Kind = "services"
	KindGallery    Kind = "gallery"
	KindContact    Kind = "contact"
	KindVision     Kind = "vision"
	KindMission    Kind = "mission"
	KindGoals      Kind = "goals"
	KindObjectives Kind = "objectives"
	KindHistory    Kind = "history"
	KindLeadership Kind = "leadership"
	KindBarangay   Kind = "barangay"
)

// AllKinds lists every page singleton in admin menu order.
func AllKinds() []Kind {
	return []Kind{
		KindHome,
		KindServices,
		KindGallery,
		KindContact,
		KindVision,
		KindMission,
		KindGoals,
		KindObjectives,
		KindHistory,
		KindLeadership,
		KindBarangay,
	}
}

// ParseKind resolves a kind from user input such as a CLI flag.
func ParseKind(raw string) (Kind, error) {
	needle := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, kind := range AllKinds() {
		if kind == needle {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown page kind %q", raw)
}

// Document is implemented by every page singleton.
type Document interface {
	Kind() Kind
	// Normalize fills fields that older documents may be missing and reports
	// whether anything changed.
	Normalize() bool
	Validate() error
	Touch(now time.Time)
}

// New returns a pointer to the default document of the given kind.
func New(kind Kind) (Document, error) {
	switch kind {
	case KindHome:
		return DefaultHomePage(), nil
	case KindServices:
		return DefaultServicesPage(), nil
	case KindGallery:
		return DefaultGalleryPage(), nil
	case KindContact:
		return DefaultContactPage(), nil
	case KindVision:
		return DefaultVisionPage(), nil
	case KindMission:
		return DefaultMissionPage(), nil
	case KindGoals:
		return DefaultGoalsPage(), nil
	case KindObjectives:
		return DefaultObjectivesPage(), nil
	case KindHistory:
		return DefaultHistoryPage(), nil
	case KindLeadership:
		return DefaultLeadershipPage(), nil
	case KindBarangay:
		return DefaultBarangayPage(), nil
	}
	return nil, fmt.Errorf("unknown page kind %q", kind)
}

// Blank returns an empty document of the given kind for decoding stored data
// into. Decoding into defaults would merge stale slice elements.
func Blank(kind Kind) (Document, error) {
	switch kind {
	case KindHome:
		return &HomePage{}, nil
	case KindServices:
		return &ServicesPage{}, nil
	case KindGallery:
		return &GalleryPage{}, nil
	case KindContact:
		return &ContactPage{}, nil
	case KindVision, KindMission:
		return &TextPage{kind: kind}, nil
	case KindGoals, KindObjectives:
		return &ListPage{kind: kind}, nil
	case KindHistory:
		return &HistoryPage{}, nil
	case KindLeadership:
		return &LeadershipPage{}, nil
	case KindBarangay:
		return &BarangayPage{}, nil
	}
	return nil, fmt.Errorf("unknown page kind %q", kind)
}

// Meta carries document timestamps.
type Meta struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch stamps the document before it is persisted.
func (m *Meta) Touch(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// Hero is the banner shown at the top of most pages.
type Hero struct {
	BackgroundImage string `json:"backgroundImage"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	ButtonText      string `json:"buttonText,omitempty"`
	ButtonLink      string `json:"buttonLink,omitempty"`
}

// Link is a labelled call to action.
type Link struct {
	Text string `json:"text"`
	Link string `json:"link"`
	Icon string `json:"icon"`
}

// Footer is the organisation block repeated at the bottom of pages.
type Footer struct {
	OrgName     string `json:"orgName"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Copyright   string `json:"copyright"`
}

// ValidationError reports a document that cannot be saved as submitted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func copyright(org string) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), org)
}

// fillDefault sets *field to fallback when it is empty and reports the change.
func fillDefault(field *string, fallback string) bool {
	if strings.TrimSpace(*field) != "" {
		return false
	}
	*field = fallback
	return true
}

// NormalizeName lower-cases and trims gallery category names.
func NormalizeName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
