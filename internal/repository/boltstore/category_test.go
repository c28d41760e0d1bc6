package boltstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/storage"
)

func TestCategoryListSynthesizesDefault(t *testing.T) {
	gw := openTestGateway(t)
	repo := NewCategoryRepository(gw)
	ctx := context.Background()

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	require.Equal(t, domain.DefaultCategoryID, categories[0].ID)
	require.Equal(t, "General", categories[0].Name)
	require.True(t, categories[0].IsDefault)

	// The synthesized default is persisted, not just returned.
	raw, err := gw.Get(ctx, storage.KeyCategories)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"general"`)
}

func TestCategoryListPrependsDefault(t *testing.T) {
	repo := NewCategoryRepository(openTestGateway(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, domain.Category{Name: "Work", Color: domain.ColorBlue})
	require.NoError(t, err)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, domain.DefaultCategoryID, categories[0].ID)
	require.Equal(t, "Work", categories[1].Name)
}

func TestCategorySaveNew(t *testing.T) {
	repo := NewCategoryRepository(openTestGateway(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Category{
		Name:        "Business",
		Description: "Work prompts",
		Color:       domain.ColorGreen,
		IsDefault:   true, // must be ignored for new categories
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(saved.ID, "cat_"))
	require.False(t, saved.IsDefault)
	require.False(t, saved.CreatedAt.IsZero())
}

func TestCategorySaveUpdate(t *testing.T) {
	repo := NewCategoryRepository(openTestGateway(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Category{Name: "Drafts", Color: domain.ColorBlue})
	require.NoError(t, err)

	updated, err := repo.Save(ctx, domain.Category{
		ID:    saved.ID,
		Name:  "Draft emails",
		Color: domain.ColorPink,
	})
	require.NoError(t, err)
	require.Equal(t, saved.ID, updated.ID)
	require.Equal(t, "Draft emails", updated.Name)
	require.Equal(t, saved.CreatedAt.Unix(), updated.CreatedAt.Unix())
	require.False(t, updated.IsDefault)

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
}

func TestCategoryDeleteProtectsDefault(t *testing.T) {
	repo := NewCategoryRepository(openTestGateway(t))
	ctx := context.Background()

	err := repo.Delete(ctx, domain.DefaultCategoryID)
	require.Error(t, err)
	require.True(t, domain.IsProtectedCategoryError(err))

	// Still protected when the collection has never been written.
	fresh := NewCategoryRepository(openTestGateway(t))
	err = fresh.Delete(ctx, domain.DefaultCategoryID)
	require.True(t, domain.IsProtectedCategoryError(err))
}

func TestCategoryDeleteCascadesToTemplates(t *testing.T) {
	gw := openTestGateway(t)
	categories := NewCategoryRepository(gw)
	templates := NewTemplateRepository(gw)
	ctx := context.Background()

	biz, err := categories.Save(ctx, domain.Category{Name: "biz", Color: domain.ColorOrange})
	require.NoError(t, err)

	saved, err := templates.Save(ctx, domain.Template{Title: "pitch", Content: "x", Category: biz.ID})
	require.NoError(t, err)
	other, err := templates.Save(ctx, domain.Template{Title: "memo", Content: "y", Category: domain.DefaultCategoryID})
	require.NoError(t, err)

	require.NoError(t, categories.Delete(ctx, biz.ID))

	remaining, err := categories.List(ctx)
	require.NoError(t, err)
	for _, c := range remaining {
		require.NotEqual(t, biz.ID, c.ID)
	}

	stored, err := templates.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, tmpl := range stored {
		if tmpl.ID == saved.ID {
			require.Equal(t, domain.DefaultCategoryID, tmpl.Category)
		}
		if tmpl.ID == other.ID {
			require.Equal(t, domain.DefaultCategoryID, tmpl.Category)
		}
	}
}

func TestCountsByCategory(t *testing.T) {
	gw := openTestGateway(t)
	categories := NewCategoryRepository(gw)
	templates := NewTemplateRepository(gw)
	ctx := context.Background()

	for _, tmpl := range []domain.Template{
		{Title: "a", Content: "a", Category: "general"},
		{Title: "b", Content: "b", Category: "biz"},
		{Title: "c", Content: "c", Category: "biz"},
		{Title: "d", Content: "d"}, // unlabeled counts toward general
	} {
		_, err := templates.Save(ctx, tmpl)
		require.NoError(t, err)
	}

	counts, err := categories.CountsByCategory(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"general": 2, "biz": 2}, counts)
}

func TestCountsByCategoryEmpty(t *testing.T) {
	repo := NewCategoryRepository(openTestGateway(t))

	counts, err := repo.CountsByCategory(context.Background())
	require.NoError(t, err)
	require.Empty(t, counts)
}
