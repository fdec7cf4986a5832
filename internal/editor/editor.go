// Package editor applies admin form submissions to page documents.
//
// Scalar fields follow two rules. Keep: a submitted key overwrites the stored
// value even when empty, an absent key leaves it alone. NonEmpty: an empty
// submission falls back to the stored value or a default. Repeated sections
// are rebuilt from indexed keys in index order; the stored entry at the same
// index donates whatever the form does not carry. Row images follow Keep
// on the hidden <row>.image field, which travels with the row when rows are
// removed or reordered; new rows submit it empty.
package editor

import (
	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/form"
)

// Upload field names shared by several editors.
const (
	FieldHeroBackground = "heroBackgroundImage"
	FieldSiteLogo       = "siteLogoImage"
)

// firstNonEmpty returns the first non-empty argument.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// applyHero merges the shared hero.* fields. fallbackImage is used when
// neither an upload nor a stored image exists; pass "" to leave it empty.
func applyHero(hero *content.Hero, sub *form.Submission, fallbackImage string) {
	hero.BackgroundImage = firstNonEmpty(sub.Uploads().First(FieldHeroBackground), hero.BackgroundImage, fallbackImage)
	hero.Title = sub.Keep("hero.title", hero.Title)
	hero.Subtitle = sub.Keep("hero.subtitle", hero.Subtitle)
	hero.ButtonText = sub.Keep("hero.buttonText", hero.ButtonText)
}

func applyFooter(footer *content.Footer, sub *form.Submission) {
	footer.OrgName = sub.Keep("footer.orgName", footer.OrgName)
	footer.Description = sub.Keep("footer.description", footer.Description)
	footer.Address = sub.Keep("footer.address", footer.Address)
	footer.Email = sub.Keep("footer.email", footer.Email)
	footer.Phone = sub.Keep("footer.phone", footer.Phone)
	footer.Copyright = sub.Keep("footer.copyright", footer.Copyright)
}

// applyPerson merges prefix.* fields (mayor.name, president.bio, ...) into p.
// The image comes from the upload, then the hidden prefix.image field when
// submitted, then p.
func applyPerson(p content.Person, sub *form.Submission, prefix, upload, fallbackImage string) content.Person {
	p.Name = sub.Keep(prefix+".name", p.Name)
	p.Title = sub.Keep(prefix+".title", p.Title)
	p.Bio = sub.Keep(prefix+".bio", p.Bio)
	p.Email = sub.Keep(prefix+".email", p.Email)
	p.Tenure = sub.Keep(prefix+".tenure", p.Tenure)
	p.Achievements = sub.Keep(prefix+".achievements", p.Achievements)
	p.Link = sub.Keep(prefix+".link", p.Link)
	p.Image = firstNonEmpty(sub.Uploads().First(upload), sub.Keep(prefix+".image", p.Image), fallbackImage)
	return p
}
