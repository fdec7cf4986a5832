package editor

import (
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/pmafa/internal/content"
	"github.com/pmafa/internal/form"
)

var testNow = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

func TestApplyHomeKeepsAbsentFields(t *testing.T) {
	page := content.DefaultHomePage()
	originalTitle := page.Hero.Title

	sub := form.New(url.Values{"hero.subtitle": {""}}, nil)
	ApplyHome(page, sub, testNow)

	require.Equal(t, originalTitle, page.Hero.Title)
	require.Empty(t, page.Hero.Subtitle)
	require.Empty(t, page.FeaturedStories.Stories)
	require.Len(t, page.Stats, content.HomeStatCount)
}

func TestApplyHomeStories(t *testing.T) {
	created := testNow.Add(-48 * time.Hour)
	page := content.DefaultHomePage()
	page.FeaturedStories.Stories = []content.Story{{
		ContentType: content.StoryContentImages,
		Images:      []string{"/images/a.jpg", "/images/b.jpg"},
		Tag:         "News",
		TagColor:    "bg-red-600",
		Link:        "/news",
		CreatedAt:   created,
	}}

	values := url.Values{
		"featuredStories.stories[0].title":       {"First"},
		"featuredStories.stories[0].contentType": {"images"},
		"existingStoryImages[0][]":               {"/images/a.jpg", " "},
		"featuredStories.stories[1].title":       {"Video"},
		"featuredStories.stories[1].contentType": {"embed"},
		"featuredStories.stories[1].embedLink":   {"https://www.youtube.com/embed/x"},
		"featuredStories.stories[2].title":       {""},
		"featuredStories.stories[2].description": {""},
	}
	uploads := form.Uploads{}
	uploads.Add("newStoryImages[0][]", "/images/new.jpg")

	ApplyHome(page, form.New(values, uploads), testNow)

	want := []content.Story{
		{
			ContentType: content.StoryContentImages,
			Images:      []string{"/images/a.jpg", "/images/new.jpg"},
			Tag:         "News",
			TagColor:    "bg-red-600",
			Title:       "First",
			Link:        "/news",
			CreatedAt:   created,
		},
		{
			ContentType: content.StoryContentEmbed,
			Images:      []string{},
			EmbedLink:   "https://www.youtube.com/embed/x",
			Tag:         content.DefaultStoryTag,
			TagColor:    content.DefaultStoryTagColor,
			Title:       "Video",
			Link:        "#",
			CreatedAt:   testNow,
		},
	}
	if diff := cmp.Diff(want, page.FeaturedStories.Stories); diff != "" {
		t.Fatalf("stories mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyHomeStatsAndTestimonials(t *testing.T) {
	page := content.DefaultHomePage()
	page.Stats = page.Stats[:1]
	page.Testimonials.Testimonials = []content.Testimonial{{Image: "/images/old.jpg"}}

	values := url.Values{
		"stats[0].value":                      {"120"},
		"testimonials.testimonials[0].quote":  {"Great"},
		"testimonials.testimonials[0].name":   {"Ana"},
		"testimonials.testimonials[1].quote":  {"Helpful"},
		"testimonials.testimonials[1].origin": {"Purok 2"},
	}
	uploads := form.Uploads{}
	uploads.Add("testimonialImage_1", "/images/ana.jpg")
	uploads.Add(FieldSiteLogo, "/images/logo.png")

	ApplyHome(page, form.New(values, uploads), testNow)

	require.Equal(t, "/images/logo.png", page.SiteLogo)
	require.Len(t, page.Stats, content.HomeStatCount)
	require.Equal(t, "120", page.Stats[0].Value)
	require.Equal(t, content.Stat{Value: "0", Label: "Stat"}, page.Stats[3])

	require.Len(t, page.Testimonials.Testimonials, 2)
	require.Equal(t, "/images/old.jpg", page.Testimonials.Testimonials[0].Image)
	require.Equal(t, "/images/ana.jpg", page.Testimonials.Testimonials[1].Image)
	require.Equal(t, "Purok 2", page.Testimonials.Testimonials[1].Origin)
}

func TestApplyServicesInheritsFromSameIndex(t *testing.T) {
	page := content.DefaultServicesPage()
	page.ServicesSection.Services = []content.Service{{Icon: "fas fa-leaf", Image: "/images/s0.jpg", Link: "/farm"}}

	values := url.Values{
		"servicesSection.services[0].title":       {"Farming"},
		"servicesSection.services[1].description": {"Loans"},
	}
	uploads := form.Uploads{}
	uploads.Add("serviceImage_1", "/images/s1.jpg")

	ApplyServices(page, form.New(values, uploads))

	want := []content.Service{
		{Icon: "fas fa-leaf", Title: "Farming", Image: "/images/s0.jpg", Link: "/farm"},
		{Icon: content.DefaultServiceIcon, Description: "Loans", Image: "/images/s1.jpg", Link: "#"},
	}
	if diff := cmp.Diff(want, page.ServicesSection.Services); diff != "" {
		t.Fatalf("services mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyGallery(t *testing.T) {
	page := content.DefaultGalleryPage()
	values := url.Values{
		"gallerySection.categories[0].name":            {" Events "},
		"gallerySection.categories[0].subcategories[]": {"Fiesta", "fiesta", ""},
		"gallerySection.categories[1].name":            {"events"},
		"gallerySection.categories[2].name":            {"Farms"},
		"gallerySection.items[0].title":                {"Parade"},
		"gallerySection.items[0].category":             {"EVENTS"},
		"gallerySection.items[0].subcategory":          {"fiesta"},
		"gallerySection.items[1].title":                {"Orphan"},
		"gallerySection.items[1].category":             {"unknown"},
		"gallerySection.items[2].title":                {"Harvest"},
		"gallerySection.items[2].category":             {"farms"},
		"gallerySection.items[2].subcategory":          {"rice"},
	}

	ApplyGallery(page, form.New(values, nil), testNow)

	want := []content.Category{
		{Name: "events", Subcategories: []string{"fiesta"}},
		{Name: "farms", Subcategories: []string{}},
	}
	require.Equal(t, want, page.GallerySection.Categories)
	require.Len(t, page.GallerySection.Items, 1)
	item := page.GallerySection.Items[0]
	require.Equal(t, "Parade", item.Title)
	require.Equal(t, content.DefaultGalleryImage, item.Image)
	require.Equal(t, testNow, item.CreatedAt)
	require.NoError(t, page.Validate())
}

func TestApplyGalleryKeepsLongSections(t *testing.T) {
	page := content.DefaultGalleryPage()
	values := url.Values{"gallerySection.categories[0].name": {"events"}}
	for i := 0; i < 250; i++ {
		values.Set(form.Key("gallerySection.items[%d].title", i), fmt.Sprintf("Photo %d", i))
		values.Set(form.Key("gallerySection.items[%d].category", i), "events")
	}

	ApplyGallery(page, form.New(values, nil), testNow)

	items := page.GallerySection.Items
	require.Len(t, items, 250)
	require.Equal(t, "Photo 200", items[200].Title)
	require.Equal(t, "Photo 249", items[249].Title)
}

func TestRowImagesFollowRemovedRows(t *testing.T) {
	services := content.DefaultServicesPage()
	services.ServicesSection.Services = []content.Service{
		{Title: "A", Image: "/images/a.jpg"},
		{Title: "B", Image: "/images/b.jpg"},
		{Title: "C", Image: "/images/c.jpg"},
	}
	ApplyServices(services, form.New(url.Values{
		"servicesSection.services[0].title": {"A"},
		"servicesSection.services[0].image": {"/images/a.jpg"},
		"servicesSection.services[1].title": {"C"},
		"servicesSection.services[1].image": {"/images/c.jpg"},
	}, nil))
	got := services.ServicesSection.Services
	require.Len(t, got, 2)
	require.Equal(t, "/images/a.jpg", got[0].Image)
	require.Equal(t, "/images/c.jpg", got[1].Image)

	gallery := content.DefaultGalleryPage()
	gallery.GallerySection.Items = []content.GalleryItem{
		{Title: "Old", Category: "events", Image: "/images/old.jpg"},
	}
	uploads := form.Uploads{}
	uploads.Add("galleryImage_1", "/images/new.jpg")
	ApplyGallery(gallery, form.New(url.Values{
		"gallerySection.categories[0].name": {"events"},
		"gallerySection.items[0].title":     {"Inserted"},
		"gallerySection.items[0].category":  {"events"},
		"gallerySection.items[0].image":     {""},
		"gallerySection.items[1].title":     {"Old"},
		"gallerySection.items[1].category":  {"events"},
		"gallerySection.items[1].image":     {"/images/old.jpg"},
	}, uploads), testNow)
	items := gallery.GallerySection.Items
	require.Len(t, items, 2)
	require.Equal(t, content.DefaultGalleryImage, items[0].Image, "a new row does not take the stored image at its index")
	require.Equal(t, "/images/new.jpg", items[1].Image, "upload wins over the hidden image")

	leadership := content.DefaultLeadershipPage()
	leadership.LeadershipSection.TeamMembers = []content.Person{
		{Name: "Rosa", Image: "/images/rosa.jpg"},
		{Name: "Ben", Image: "/images/ben.jpg"},
	}
	ApplyLeadership(leadership, form.New(url.Values{
		"teamMembers[0].name":  {"Ben"},
		"teamMembers[0].image": {"/images/ben.jpg"},
		"mayor.image":          {"/images/mayor.jpg"},
	}, nil))
	section := leadership.LeadershipSection
	require.Len(t, section.TeamMembers, 1)
	require.Equal(t, "/images/ben.jpg", section.TeamMembers[0].Image)
	require.Equal(t, "/images/mayor.jpg", section.Mayor.Image)
}

func TestApplyBarangayCoordinatorImageFollowsRow(t *testing.T) {
	page := content.DefaultBarangayPage()
	page.MainSection.Barangays = []content.Barangay{
		{Name: "Alpha", Officers: content.DefaultOfficers(), Coordinator: &content.Person{Name: "Ana", Image: "/images/ana.jpg"}},
		{Name: "Beta", Officers: content.DefaultOfficers(), Coordinator: &content.Person{Name: "Bo", Image: "/images/bo.jpg"}},
	}
	ApplyBarangay(page, form.New(url.Values{
		"barangays[0].name":              {"Beta"},
		"barangays[0].coordinator.name":  {"Bo"},
		"barangays[0].coordinator.image": {"/images/bo.jpg"},
	}, nil))

	require.Len(t, page.MainSection.Barangays, 1)
	require.Equal(t, "/images/bo.jpg", page.MainSection.Barangays[0].Coordinator.Image)
}

func TestApplyGalleryDefaultsCategories(t *testing.T) {
	page := content.DefaultGalleryPage()
	ApplyGallery(page, form.New(url.Values{}, nil), testNow)
	require.Equal(t, content.DefaultGalleryCategories(), page.GallerySection.Categories)
	require.Empty(t, page.GallerySection.Items)
}

func TestApplyContactDerivesLinks(t *testing.T) {
	page := content.DefaultContactPage()
	values := url.Values{
		"infoSection.phone.number":  {"+63 (912) 345-6789"},
		"infoSection.email.address": {"office@pmafa.org"},
	}
	ApplyContact(page, form.New(values, nil))

	require.Equal(t, "tel:639123456789", page.InfoSection.Phone.Link)
	require.Equal(t, "mailto:office@pmafa.org", page.InfoSection.Email.Link)
}

func TestApplyListPage(t *testing.T) {
	page := content.DefaultGoalsPage()
	ApplyListPage(page, form.New(url.Values{"content.goals[]": {" Grow ", "", "Unite"}}, nil))
	require.Equal(t, []string{"Grow", "Unite"}, page.Content.Items)

	ApplyListPage(page, form.New(url.Values{}, nil))
	require.Empty(t, page.Content.Items)
}

func TestApplyTextPageAndHistory(t *testing.T) {
	vision := content.DefaultVisionPage()
	ApplyTextPage(vision, form.New(url.Values{"content.body": {"**bold**"}}, nil))
	require.Equal(t, "**bold**", vision.Content.Body)
	require.NotEmpty(t, vision.Content.Title)

	history := content.DefaultHistoryPage()
	values := url.Values{
		"events[0].year":  {"1998"},
		"events[0].title": {"Founded"},
		"events[1].year":  {"2010"},
		"events[3].year":  {"2020"},
	}
	ApplyHistory(history, form.New(values, nil))
	require.Equal(t, []content.TimelineEvent{
		{Year: "1998", Title: "Founded"},
		{Year: "2010"},
	}, history.Content.TimelineEvents)
}

func TestApplyLeadership(t *testing.T) {
	page := content.DefaultLeadershipPage()
	page.LeadershipSection.TeamMembers = []content.Person{{Name: "Old", Image: "/images/old.jpg"}}
	mayorLink := page.LeadershipSection.Mayor.Link

	values := url.Values{
		"mayor.name":           {"Mayor Jane"},
		"teamMembers[0].name":  {"Rosa"},
		"teamMembers[0].title": {"Secretary"},
		"teamMembers[1].name":  {"Ben"},
		"teamMembers[1].link":  {"/administration/person/ben"},
	}
	uploads := form.Uploads{}
	uploads.Add("presidentImage", "/images/president.jpg")

	ApplyLeadership(page, form.New(values, uploads))

	section := page.LeadershipSection
	require.Equal(t, "Mayor Jane", section.Mayor.Name)
	require.Equal(t, mayorLink, section.Mayor.Link)
	require.Equal(t, "/images/president.jpg", section.President.Image)
	require.Equal(t, []content.Person{
		{Name: "Rosa", Title: "Secretary", Link: "#", Image: "/images/old.jpg"},
		{Name: "Ben", Link: "/administration/person/ben", Image: content.DefaultMemberImage},
	}, section.TeamMembers)
}

func TestApplyBarangay(t *testing.T) {
	page := content.DefaultBarangayPage()
	existing := content.DefaultOfficers()
	existing.President = "Pedro"
	existing.PresidentImage = "/images/pedro.jpg"
	coordinator := &content.Person{Name: "Coord", Link: content.PersonPathPrefix + "coord"}
	page.MainSection.Barangays = []content.Barangay{{Name: "Alpha", Officers: existing, Coordinator: coordinator}}

	values := url.Values{
		"barangays[0].name":                               {"Alpha"},
		"barangays[0].officers.secretary":                 {"Lina"},
		"barangays[0].officers.boardOfDirectors[0].title": {"Purok 1"},
		"barangays[0].officers.boardOfDirectors[0].name":  {"Mario"},
		"barangays[0].officers.boardOfDirectors[1].title": {"  "},
		"barangays[0].officers.boardOfDirectors[1].name":  {""},
		"barangays[1].name":                               {""},
		"barangays[1].officers.presidentImage":            {"/images/hidden.jpg"},
	}
	ApplyBarangay(page, form.New(values, nil))

	barangays := page.MainSection.Barangays
	require.Len(t, barangays, 2)

	alpha := barangays[0]
	require.Equal(t, "Pedro", alpha.Officers.President)
	require.Equal(t, "Lina", alpha.Officers.Secretary)
	require.Equal(t, "/images/pedro.jpg", alpha.Officers.PresidentImage)
	require.Equal(t, []content.Director{{Title: "Purok 1", Name: "Mario"}}, alpha.Officers.BoardOfDirectors)
	require.Same(t, coordinator, alpha.Coordinator)

	second := barangays[1]
	require.Equal(t, "Unnamed Barangay 2", second.Name)
	require.Equal(t, "/images/hidden.jpg", second.Officers.PresidentImage)
	require.Equal(t, content.DefaultOfficers().VicePresident, second.Officers.VicePresident)
	require.Empty(t, second.Officers.BoardOfDirectors)
	require.NoError(t, page.Validate())
}

func TestApplyBarangayPresidentImageUploadWins(t *testing.T) {
	page := content.DefaultBarangayPage()
	uploads := form.Uploads{}
	uploads.Add("barangays[0].officers.presidentImageFile", "/images/upload.jpg")
	values := url.Values{
		"barangays[0].name":                    {"Beta"},
		"barangays[0].officers.presidentImage": {"/images/hidden.jpg"},
		"barangays[0].coordinator.name":        {"Carla"},
	}
	ApplyBarangay(page, form.New(values, uploads))

	b := page.MainSection.Barangays[0]
	require.Equal(t, "/images/upload.jpg", b.Officers.PresidentImage)
	require.NotNil(t, b.Coordinator)
	require.Equal(t, "Carla", b.Coordinator.Name)
	require.Equal(t, content.DefaultMemberImage, b.Coordinator.Image)
}
