package repository

import (
	"context"

	"github.com/promptdeck/promptdeck/internal/domain"
)

// CategoryRepository owns the category collection. The default category is
// guaranteed to exist after any List call. Name uniqueness is validated by
// the service layer before Save, not here.
type CategoryRepository interface {
	// List returns the collection, synthesizing and persisting the default
	// category when it is missing.
	List(ctx context.Context) ([]domain.Category, error)

	// Save updates the record matching input's id, or appends input as a
	// new category (generating an id when absent).
	Save(ctx context.Context, input domain.Category) (domain.Category, error)

	// Delete removes the category and reassigns its templates to the
	// default category in the same transaction. Deleting the default
	// category returns domain.ProtectedCategoryError.
	Delete(ctx context.Context, id string) error

	// CountsByCategory aggregates template counts per category id.
	// Templates without a category count toward the default category.
	CountsByCategory(ctx context.Context) (map[string]int, error)
}
