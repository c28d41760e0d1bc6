package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/repository/boltstore"
	"github.com/promptdeck/promptdeck/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	gw, err := storage.OpenBolt(filepath.Join(t.TempDir(), "promptdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, gw.Close())
	})

	return New(boltstore.NewTemplateRepository(gw), boltstore.NewCategoryRepository(gw), gw)
}

func TestSaveTemplateValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveTemplate(ctx, domain.Template{Content: "body"})
	require.True(t, domain.IsValidationError(err), "missing title should be rejected, got %v", err)

	_, err = svc.SaveTemplate(ctx, domain.Template{Title: "name"})
	require.True(t, domain.IsValidationError(err), "missing content should be rejected, got %v", err)
}

func TestSaveTemplateDefaultsCategory(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.SaveTemplate(context.Background(), domain.Template{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.Equal(t, domain.DefaultCategoryID, saved.Category)
}

func TestSaveCategoryValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveCategory(ctx, domain.Category{Color: domain.ColorBlue})
	require.True(t, domain.IsValidationError(err))

	_, err = svc.SaveCategory(ctx, domain.Category{Name: "x", Color: domain.Color("mauve")})
	require.True(t, domain.IsValidationError(err))
}

func TestSaveCategoryDefaultsColor(t *testing.T) {
	svc := newTestService(t)

	saved, err := svc.SaveCategory(context.Background(), domain.Category{Name: "Work"})
	require.NoError(t, err)
	require.Equal(t, domain.ColorBlue, saved.Color)
}

func TestSaveCategoryRejectsDuplicateName(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.SaveCategory(ctx, domain.Category{Name: "Work", Color: domain.ColorBlue})
	require.NoError(t, err)

	_, err = svc.SaveCategory(ctx, domain.Category{Name: "WORK", Color: domain.ColorRed})
	require.True(t, domain.IsValidationError(err), "case-insensitive duplicate should be rejected")

	// Renaming a category to its own name is allowed.
	_, err = svc.SaveCategory(ctx, domain.Category{ID: first.ID, Name: "work", Color: domain.ColorRed})
	require.NoError(t, err)
}

func TestSaveCategoryRejectsDefaultName(t *testing.T) {
	svc := newTestService(t)

	// "General" is taken by the synthesized default category.
	_, err := svc.SaveCategory(context.Background(), domain.Category{Name: "general", Color: domain.ColorBlue})
	require.True(t, domain.IsValidationError(err))
}

func TestSeed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	templates, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 3)

	// Seeding twice must not duplicate the starters.
	require.NoError(t, svc.Seed(ctx))
	templates, err = svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 3)
}

func TestSeedSkippedAfterWipe(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	templates, err := svc.ListTemplates(ctx)
	require.NoError(t, err)
	for _, tmpl := range templates {
		require.NoError(t, svc.DeleteTemplate(ctx, tmpl.ID))
	}

	require.NoError(t, svc.Seed(ctx))
	templates, err = svc.ListTemplates(ctx)
	require.NoError(t, err)
	require.Empty(t, templates)
}

func TestGetTemplate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	saved, err := svc.SaveTemplate(ctx, domain.Template{Title: "t", Content: "c"})
	require.NoError(t, err)

	got, ok, err := svc.GetTemplate(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, saved, got)

	_, ok, err = svc.GetTemplate(ctx, "tmpl_0_missing")
	require.NoError(t, err)
	require.False(t, ok)
}
