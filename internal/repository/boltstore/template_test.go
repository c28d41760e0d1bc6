package boltstore

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/storage"
)

func openTestGateway(t *testing.T) storage.Gateway {
	t.Helper()

	gw, err := storage.OpenBolt(filepath.Join(t.TempDir(), "promptdeck.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, gw.Close())
	})
	return gw
}

func TestTemplateListUninitialized(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t))

	templates, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, templates)
}

func TestTemplateSaveNew(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Template{
		Title:    "Summarize",
		Content:  "Summarize: {{content}}",
		Category: "general",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(saved.ID, "tmpl_"))
	require.NotZero(t, saved.CreatedAt)
	require.Equal(t, saved.CreatedAt, saved.UpdatedAt)
	require.Zero(t, saved.LastUsed)
	require.Zero(t, saved.UsageCount)

	templates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Equal(t, saved, templates[0])
}

func TestTemplateSaveGeneratesDistinctIDs(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t))
	ctx := context.Background()

	first, err := repo.Save(ctx, domain.Template{Title: "a", Content: "a"})
	require.NoError(t, err)
	second, err := repo.Save(ctx, domain.Template{Title: "b", Content: "b"})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)
}

func TestTemplateSavePreservesProtectedFields(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Template{Title: "before", Content: "x"})
	require.NoError(t, err)
	require.NoError(t, repo.RecordUsage(ctx, saved.ID))

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	original := stored[0]

	update := domain.Template{
		ID:      saved.ID,
		Title:   "after",
		Content: "y",
		// A hostile payload: every store-owned field set to garbage.
		CreatedAt:  1,
		UsageCount: 999,
		LastUsed:   1,
	}
	updated, err := repo.Save(ctx, update)
	require.NoError(t, err)

	require.Equal(t, "after", updated.Title)
	require.Equal(t, original.CreatedAt, updated.CreatedAt)
	require.Equal(t, original.UsageCount, updated.UsageCount)
	require.Equal(t, original.LastUsed, updated.LastUsed)
	require.GreaterOrEqual(t, updated.UpdatedAt, original.UpdatedAt)

	stored, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, updated, stored[0])
}

func TestTemplateSaveUnknownIDIsNoOp(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t))
	ctx := context.Background()

	_, err := repo.Save(ctx, domain.Template{Title: "kept", Content: "x"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, domain.Template{ID: "tmpl_0_missing", Title: "ghost"})
	require.NoError(t, err)

	templates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Equal(t, "kept", templates[0].Title)
}

func TestTemplateDelete(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t))
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Template{Title: "doomed", Content: "x"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))

	templates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, templates)

	// Absent ids are a no-op, not an error.
	require.NoError(t, repo.Delete(ctx, saved.ID))
}

func TestTemplateRecordUsageMonotonic(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t)).(*templateRepo)
	ctx := context.Background()

	saved, err := repo.Save(ctx, domain.Template{Title: "used", Content: "x"})
	require.NoError(t, err)

	base := time.Now()
	for i := 1; i <= 3; i++ {
		tick := base.Add(time.Duration(i) * time.Second)
		repo.now = func() time.Time { return tick }
		require.NoError(t, repo.RecordUsage(ctx, saved.ID))

		templates, err := repo.List(ctx)
		require.NoError(t, err)
		require.Equal(t, i, templates[0].UsageCount)
		require.Equal(t, tick.UnixMilli(), templates[0].LastUsed)
	}
}

func TestTemplateRecordUsageUnknownIDIsNoOp(t *testing.T) {
	repo := NewTemplateRepository(openTestGateway(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordUsage(ctx, "tmpl_0_missing"))

	templates, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, templates)
}
