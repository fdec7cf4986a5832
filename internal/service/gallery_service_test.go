package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pmafa/internal/content"
)

func TestPublicGalleryMergesStoryImages(t *testing.T) {
	pages, _ := newTestPageService(t)
	ctx := context.Background()

	gallery, err := pages.Gallery(ctx)
	require.NoError(t, err)
	gallery.GallerySection.Categories = []content.Category{{Name: "events", Subcategories: []string{}}, {Name: StoriesCategory, Subcategories: []string{}}}
	gallery.GallerySection.Items = []content.GalleryItem{
		{Image: "/images/old.jpg", Title: "Old", Category: "events", CreatedAt: fixedNow.Add(-72 * time.Hour)},
		{Image: "/images/new.jpg", Title: "New", Category: "events", CreatedAt: fixedNow},
	}
	require.NoError(t, pages.Save(ctx, gallery))

	home, err := pages.Home(ctx)
	require.NoError(t, err)
	home.FeaturedStories.Stories = []content.Story{
		{ContentType: content.StoryContentImages, Images: []string{"/images/s1.jpg", "/images/s2.jpg"}, Title: "Harvest", CreatedAt: fixedNow.Add(-24 * time.Hour)},
		{ContentType: content.StoryContentEmbed, Images: []string{}, EmbedLink: "https://youtu.be/x", CreatedAt: fixedNow},
	}
	require.NoError(t, pages.Save(ctx, home))

	view, err := NewGalleryService(pages).PublicGallery(ctx)
	require.NoError(t, err)

	var titles []string
	for _, item := range view.Items {
		titles = append(titles, item.Title)
	}
	require.Equal(t, []string{"New", "Harvest", "Harvest", "Old"}, titles)
	require.Equal(t, StoriesCategory, view.Items[1].Category)
	require.Equal(t, "Image from a featured story", view.Items[1].Description)
	require.Equal(t, "/images/s1.jpg", view.Items[1].Image, "stable order within the same story")

	require.Len(t, view.Categories, 2, "stories category is not duplicated")
	require.Equal(t, "events", view.Categories[0].Name)
}

func TestPublicGalleryWithoutHomeDocument(t *testing.T) {
	pages, _ := newTestPageService(t)
	view, err := NewGalleryService(pages).PublicGallery(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Items, len(content.DefaultGalleryPage().GallerySection.Items))
	require.Equal(t, StoriesCategory, view.Categories[len(view.Categories)-1].Name)
}
