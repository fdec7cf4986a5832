package editor

import (
	"fmt"
	"strings"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/form"
)

// ApplyLeadership merges the leadership form into page.
func ApplyLeadership(page *content.LeadershipPage, sub *form.Submission) {
	applyHero(&page.Hero, sub, content.DefaultLeadershipHeroImage)

	section := &page.LeadershipSection
	section.Title = sub.Keep("leadershipSection.title", section.Title)
	section.Subtitle = sub.Keep("leadershipSection.subtitle", section.Subtitle)
	section.Mayor = applyPerson(section.Mayor, sub, "mayor", "mayorImage", content.DefaultMayorImage)
	section.President = applyPerson(section.President, sub, "president", "presidentImage", content.DefaultPresidentImage)

	const (
		name         = "teamMembers[%d].name"
		title        = "teamMembers[%d].title"
		bio          = "teamMembers[%d].bio"
		email        = "teamMembers[%d].email"
		tenure       = "teamMembers[%d].tenure"
		achievements = "teamMembers[%d].achievements"
		link         = "teamMembers[%d].link"
		image        = "teamMembers[%d].image"
		upload       = "teamMemberImage_%d"
	)
	n := form.Count(func(i int) bool { return sub.AnyIndexed(i, name) })
	members := make([]content.Person, 0, n)
	for i := 0; i < n; i++ {
		var prev content.Person
		if i < len(section.TeamMembers) {
			prev = section.TeamMembers[i]
		}
		members = append(members, content.Person{
			Name:         sub.Get(form.Key(name, i)),
			Title:        sub.Get(form.Key(title, i)),
			Bio:          sub.Get(form.Key(bio, i)),
			Email:        sub.Get(form.Key(email, i)),
			Tenure:       sub.Get(form.Key(tenure, i)),
			Achievements: sub.Get(form.Key(achievements, i)),
			Link:         sub.NonEmpty(form.Key(link, i), "#"),
			Image:        firstNonEmpty(sub.Uploads().First(form.Key(upload, i)), sub.Keep(form.Key(image, i), prev.Image), content.DefaultMemberImage),
		})
	}
	section.TeamMembers = members
}

// ApplyBarangay merges the barangay form into page. Officers of a new
// barangay start from content.DefaultOfficers.
func ApplyBarangay(page *content.BarangayPage, sub *form.Submission) {
	applyHero(&page.Hero, sub, content.DefaultBarangayHeroImage)

	section := &page.MainSection
	section.Title = sub.Keep("mainSection.title", section.Title)
	section.Subtitle = sub.Keep("mainSection.subtitle", section.Subtitle)

	n := form.Count(func(i int) bool { return sub.AnyIndexed(i, "barangays[%d].name") })
	barangays := make([]content.Barangay, 0, n)
	for i := 0; i < n; i++ {
		prev := content.Barangay{Officers: content.DefaultOfficers()}
		if i < len(section.Barangays) {
			prev = section.Barangays[i]
		}
		prefix := fmt.Sprintf("barangays[%d]", i)
		barangays = append(barangays, content.Barangay{
			Name:        sub.NonEmpty(prefix+".name", fmt.Sprintf("Unnamed Barangay %d", i+1)),
			Officers:    applyOfficers(prev.Officers, sub, prefix+".officers"),
			Coordinator: applyCoordinator(prev.Coordinator, sub, prefix+".coordinator"),
		})
	}
	section.Barangays = barangays
}

func applyOfficers(o content.Officers, sub *form.Submission, prefix string) content.Officers {
	fields := []struct {
		key string
		dst *string
	}{
		{"president", &o.President},
		{"vicePresident", &o.VicePresident},
		{"secretary", &o.Secretary},
		{"asstSecretary", &o.AsstSecretary},
		{"treasurer", &o.Treasurer},
		{"asstTreasurer", &o.AsstTreasurer},
		{"auditor", &o.Auditor},
		{"asstAuditor", &o.AsstAuditor},
		{"businessManager", &o.BusinessManager},
		{"asstBusManager", &o.AsstBusManager},
		{"pio", &o.PIO},
		{"asstPio", &o.AsstPIO},
		{"muse", &o.Muse},
		{"escort", &o.Escort},
	}
	for _, f := range fields {
		*f.dst = sub.Keep(prefix+"."+f.key, *f.dst)
	}

	o.PresidentImage = firstNonEmpty(
		sub.Uploads().First(prefix+".presidentImageFile"),
		sub.Keep(prefix+".presidentImage", o.PresidentImage),
		content.DefaultOfficerImage,
	)

	title := prefix + ".boardOfDirectors[%d].title"
	name := prefix + ".boardOfDirectors[%d].name"
	n := form.Count(func(j int) bool { return sub.AnyIndexed(j, title, name) })
	directors := make([]content.Director, 0, n)
	for j := 0; j < n; j++ {
		d := content.Director{
			Title: strings.TrimSpace(sub.Get(form.Key(title, j))),
			Name:  strings.TrimSpace(sub.Get(form.Key(name, j))),
		}
		if d.Title == "" && d.Name == "" {
			continue
		}
		directors = append(directors, d)
	}
	o.BoardOfDirectors = directors
	return o
}

// applyCoordinator keeps the stored coordinator unless coordinator fields
// were submitted. Submitting an empty name removes it.
func applyCoordinator(prev *content.Person, sub *form.Submission, prefix string) *content.Person {
	if !sub.Has(prefix + ".name") {
		return prev
	}
	var base content.Person
	if prev != nil {
		base = *prev
	}
	merged := applyPerson(base, sub, prefix, prefix+"ImageFile", content.DefaultMemberImage)
	if strings.TrimSpace(merged.Name) == "" {
		return nil
	}
	return &merged
}
