package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	for _, kind := range AllKinds() {
		t.Run(string(kind), func(t *testing.T) {
			doc, err := New(kind)
			require.NoError(t, err)
			require.Equal(t, kind, doc.Kind())
			require.NoError(t, doc.Validate())
			require.False(t, doc.Normalize(), "defaults should already be normalized")
		})
	}
}

func TestBlankKeepsKind(t *testing.T) {
	for _, kind := range AllKinds() {
		doc, err := Blank(kind)
		require.NoError(t, err)
		require.Equal(t, kind, doc.Kind())
	}

	_, err := Blank("nope")
	require.Error(t, err)
}

func TestParseKind(t *testing.T) {
	kind, err := ParseKind("  Barangay ")
	require.NoError(t, err)
	require.Equal(t, KindBarangay, kind)

	_, err = ParseKind("blog")
	require.Error(t, err)
}

func TestHomeValidateStoryBounds(t *testing.T) {
	page := DefaultHomePage()
	page.FeaturedStories.Stories = nil

	err := page.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "featuredStories.stories", verr.Field)

	page = DefaultHomePage()
	for len(page.FeaturedStories.Stories) <= maxStories {
		page.FeaturedStories.Stories = append(page.FeaturedStories.Stories, Story{ContentType: StoryContentImages})
	}
	require.Error(t, page.Validate())
}

func TestHomeNormalizeFillsLogoAndContentType(t *testing.T) {
	page := &HomePage{FeaturedStories: FeaturedStories{Stories: []Story{{Title: "legacy"}}}}

	require.True(t, page.Normalize())
	require.Equal(t, DefaultSiteLogo, page.SiteLogo)
	require.Equal(t, StoryContentImages, page.FeaturedStories.Stories[0].ContentType)
	require.NotNil(t, page.FeaturedStories.Stories[0].Images)
	require.False(t, page.Normalize())
}

func TestContactNormalizeAddsHeroImage(t *testing.T) {
	page := &ContactPage{}
	require.True(t, page.Normalize())
	require.Equal(t, DefaultContactHeroImage, page.Hero.BackgroundImage)
}

func TestBarangayNormalizeOfficers(t *testing.T) {
	page := &BarangayPage{
		Hero: Hero{BackgroundImage: "/images/custom.jpg"},
		MainSection: BarangayMainSection{Barangays: []Barangay{
			{Name: "San Roque", Officers: Officers{President: "Bobby"}},
		}},
	}

	require.True(t, page.Normalize())
	officers := page.MainSection.Barangays[0].Officers
	require.Equal(t, DefaultOfficerImage, officers.PresidentImage)
	require.NotNil(t, officers.BoardOfDirectors)
	require.Equal(t, "/images/custom.jpg", page.Hero.BackgroundImage)
}

func TestGalleryValidate(t *testing.T) {
	page := DefaultGalleryPage()
	page.GallerySection.Categories = []Category{
		{Name: "events", Subcategories: []string{"2024"}},
	}
	page.GallerySection.Items = []GalleryItem{{Category: "events", Subcategory: "2024"}}
	require.NoError(t, page.Validate())

	page.GallerySection.Items = append(page.GallerySection.Items, GalleryItem{Category: "events", Subcategory: "2023"})
	require.Error(t, page.Validate())

	page.GallerySection.Items = nil
	page.GallerySection.Categories = append(page.GallerySection.Categories, Category{Name: "events"})
	require.Error(t, page.Validate())
}

func TestGalleryNormalizeLowercasesCategories(t *testing.T) {
	page := &GalleryPage{GallerySection: GallerySection{Categories: []Category{{Name: " Events "}}}}
	require.True(t, page.Normalize())
	require.Equal(t, "events", page.GallerySection.Categories[0].Name)
}

func TestMetaTouch(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	var meta Meta
	meta.Touch(created)
	meta.Touch(later)

	require.Equal(t, created, meta.CreatedAt)
	require.Equal(t, later, meta.UpdatedAt)
}

func TestPhoneLink(t *testing.T) {
	require.Equal(t, "tel:5551234567", PhoneLink("(555) 123-4567"))
	require.Equal(t, "mailto:info@pmafa.org", EmailLink("info@pmafa.org"))
}
