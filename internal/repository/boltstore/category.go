package boltstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/repository"
	"github.com/promptdeck/promptdeck/internal/storage"
)

type categoryRepo struct {
	gateway storage.Gateway
	now     func() time.Time
}

// NewCategoryRepository returns a CategoryRepository backed by the gateway.
func NewCategoryRepository(gateway storage.Gateway) repository.CategoryRepository {
	return &categoryRepo{gateway: gateway, now: time.Now}
}

func (r *categoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	raw, err := r.gateway.Get(ctx, storage.KeyCategories)
	if err != nil {
		return nil, errors.Wrap(err, "read categories")
	}
	categories, err := decodeCategories(raw)
	if err != nil {
		return nil, err
	}

	for _, c := range categories {
		if c.ID == domain.DefaultCategoryID {
			return categories, nil
		}
	}

	// Default category is missing, synthesize it and persist before
	// returning so every later read sees it.
	categories = append([]domain.Category{domain.DefaultCategory(r.now())}, categories...)
	encoded, err := encodeCategories(categories)
	if err != nil {
		return nil, err
	}
	if err := r.gateway.Put(ctx, storage.KeyCategories, encoded); err != nil {
		return nil, errors.Wrap(err, "write categories")
	}
	return categories, nil
}

func (r *categoryRepo) Save(ctx context.Context, input domain.Category) (domain.Category, error) {
	categories, err := r.List(ctx)
	if err != nil {
		return domain.Category{}, err
	}

	now := r.now()

	found := false
	for i, existing := range categories {
		if existing.ID != input.ID || input.ID == "" {
			continue
		}
		input.IsDefault = existing.IsDefault
		input.CreatedAt = existing.CreatedAt
		input.UpdatedAt = now
		categories[i] = input
		found = true
		break
	}
	if !found {
		if input.ID == "" {
			input.ID = newID("cat", now)
		}
		input.IsDefault = false
		input.CreatedAt = now
		input.UpdatedAt = now
		categories = append(categories, input)
	}

	raw, err := encodeCategories(categories)
	if err != nil {
		return domain.Category{}, err
	}
	if err := r.gateway.Put(ctx, storage.KeyCategories, raw); err != nil {
		return domain.Category{}, errors.Wrap(err, "write categories")
	}
	return input, nil
}

// Delete removes the category and moves its templates to the default
// category. Both collections are written in one gateway transaction so a
// crash cannot leave templates pointing at a deleted category.
func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	if id == domain.DefaultCategoryID {
		return domain.ProtectedCategoryError{ID: id}
	}

	return r.gateway.Update(ctx, func(txn storage.Txn) error {
		categories, err := decodeCategories(txn.Get(storage.KeyCategories))
		if err != nil {
			return err
		}
		templates, err := decodeTemplates(txn.Get(storage.KeyTemplates))
		if err != nil {
			return err
		}

		filtered := categories[:0]
		for _, c := range categories {
			if c.ID != id {
				filtered = append(filtered, c)
			}
		}

		for i := range templates {
			if templates[i].Category == id {
				templates[i].Category = domain.DefaultCategoryID
			}
		}

		encodedCategories, err := encodeCategories(filtered)
		if err != nil {
			return err
		}
		encodedTemplates, err := encodeTemplates(templates)
		if err != nil {
			return err
		}

		if err := txn.Put(storage.KeyCategories, encodedCategories); err != nil {
			return errors.Wrap(err, "write categories")
		}
		return errors.Wrap(txn.Put(storage.KeyTemplates, encodedTemplates), "write templates")
	})
}

func (r *categoryRepo) CountsByCategory(ctx context.Context) (map[string]int, error) {
	raw, err := r.gateway.Get(ctx, storage.KeyTemplates)
	if err != nil {
		return nil, errors.Wrap(err, "read templates")
	}
	templates, err := decodeTemplates(raw)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, t := range templates {
		id := t.Category
		if id == "" {
			id = domain.DefaultCategoryID
		}
		counts[id]++
	}
	return counts, nil
}
