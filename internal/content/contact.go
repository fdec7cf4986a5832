package content

import (
	"fmt"
	"strings"
	"unicode"
)

const DefaultContactHeroImage = "/images/default-contact-hero.jpg"

// ContactPage drives the contact form and the office details.
type ContactPage struct {
	Meta
	Hero        Hero        `json:"hero"`
	FormSection FormSection `json:"formSection"`
	InfoSection InfoSection `json:"infoSection"`
	Footer      Footer      `json:"footer"`
}

// FormSection configures the contact form, including where messages go.
type FormSection struct {
	Title              string `json:"title"`
	Subtitle           string `json:"subtitle"`
	FormRecipientEmail string `json:"formRecipientEmail"`
}

// InfoSection lists the ways to reach the office.
type InfoSection struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Address     AddressInfo `json:"address"`
	Phone       PhoneInfo   `json:"phone"`
	Email       EmailInfo   `json:"email"`
	MapEmbedURL string      `json:"mapEmbedUrl"`
}

type AddressInfo struct {
	Icon  string `json:"icon"`
	Lines string `json:"lines"`
}

type PhoneInfo struct {
	Icon   string `json:"icon"`
	Number string `json:"number"`
	Link   string `json:"link"`
}

type EmailInfo struct {
	Icon    string `json:"icon"`
	Address string `json:"address"`
	Link    string `json:"link"`
}

// DefaultContactPage returns the document created on first access.
func DefaultContactPage() *ContactPage {
	return &ContactPage{
		Hero: Hero{
			Title:           "Get in Touch",
			Subtitle:        "We’re here to support you...",
			ButtonText:      "Contact Us",
			BackgroundImage: DefaultContactHeroImage,
		},
		FormSection: FormSection{
			Title:              "Send Us a Message",
			Subtitle:           "Fill out the form below...",
			FormRecipientEmail: "default-contact@pmafa.org",
		},
		InfoSection: InfoSection{
			Title:       "Connect With Us",
			Subtitle:    "Find us at our office...",
			Address:     AddressInfo{Icon: "fas fa-map-marker-alt", Lines: "123 Community Avenue\nNew York, NY 10001"},
			Phone:       PhoneInfo{Icon: "fas fa-phone-alt", Number: "(555) 123-4567", Link: "tel:+15551234567"},
			Email:       EmailInfo{Icon: "fas fa-envelope", Address: "info@pmafa.org", Link: "mailto:info@pmafa.org"},
			MapEmbedURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3861.300584797087!2d120.98185931535705!3d14.58197098980801!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x3397ca03403f4cc9%3A0xaa565570182d5a1!2sManila%2C%20Metro%20Manila!5e0!3m2!1sen!2sph!4v1678886400000",
		},
		Footer: Footer{
			OrgName:     "PMAFA Contact",
			Description: "Contact page footer description.",
			Address:     "123 Contact Address\nCity, State ZIP",
			Email:       "contact-footer@pmafa.org",
			Phone:       "(555) 987-6543",
			Copyright:   copyright("PMAFA Contact"),
		},
	}
}

func (p *ContactPage) Kind() Kind { return KindContact }

func (p *ContactPage) Normalize() bool {
	changed := fillDefault(&p.Hero.BackgroundImage, DefaultContactHeroImage)
	changed = fillDefault(&p.InfoSection.Address.Icon, "fas fa-map-marker-alt") || changed
	changed = fillDefault(&p.InfoSection.Phone.Icon, "fas fa-phone-alt") || changed
	changed = fillDefault(&p.InfoSection.Email.Icon, "fas fa-envelope") || changed
	return changed
}

func (p *ContactPage) Validate() error { return nil }

// PhoneLink builds a tel: link from the digits of number.
func PhoneLink(number string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)
	return "tel:" + digits
}

// EmailLink builds a mailto: link.
func EmailLink(address string) string {
	return fmt.Sprintf("mailto:%s", address)
}
