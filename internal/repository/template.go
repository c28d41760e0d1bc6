package repository

import (
	"context"

	"github.com/promptdeck/promptdeck/internal/domain"
)

// TemplateRepository owns the template collection. Every operation is a
// full-collection read-modify-write through the persistence gateway; there
// are no partial updates.
type TemplateRepository interface {
	// List returns the full collection, empty when storage is uninitialized.
	List(ctx context.Context) ([]domain.Template, error)

	// Save creates input when it has no id, otherwise merges it over the
	// existing record with the same id. CreatedAt, UsageCount and LastUsed
	// of an existing record always survive a save. A non-empty id that
	// matches no record leaves storage untouched.
	Save(ctx context.Context, input domain.Template) (domain.Template, error)

	// Delete removes the record with the given id; absent ids are a no-op.
	Delete(ctx context.Context, id string) error

	// RecordUsage stamps LastUsed and increments UsageCount for the record
	// with the given id; absent ids are a no-op.
	RecordUsage(ctx context.Context, id string) error
}
