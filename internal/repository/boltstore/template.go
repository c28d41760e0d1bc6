package boltstore

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/repository"
	"github.com/promptdeck/promptdeck/internal/storage"
)

type templateRepo struct {
	gateway storage.Gateway
	now     func() time.Time
}

// NewTemplateRepository returns a TemplateRepository backed by the gateway.
func NewTemplateRepository(gateway storage.Gateway) repository.TemplateRepository {
	return &templateRepo{gateway: gateway, now: time.Now}
}

func (r *templateRepo) List(ctx context.Context) ([]domain.Template, error) {
	raw, err := r.gateway.Get(ctx, storage.KeyTemplates)
	if err != nil {
		return nil, errors.Wrap(err, "read templates")
	}
	return decodeTemplates(raw)
}

func (r *templateRepo) Save(ctx context.Context, input domain.Template) (domain.Template, error) {
	templates, err := r.List(ctx)
	if err != nil {
		return domain.Template{}, err
	}

	now := r.now()

	if input.ID == "" {
		input.ID = newID("tmpl", now)
		input.CreatedAt = now.UnixMilli()
		input.UpdatedAt = now.UnixMilli()
		input.LastUsed = 0
		input.UsageCount = 0
		templates = append(templates, input)
	} else {
		found := false
		for i, existing := range templates {
			if existing.ID != input.ID {
				continue
			}
			// Creation and usage metadata belong to the store; whatever the
			// caller sent for them is discarded.
			input.CreatedAt = existing.CreatedAt
			input.UsageCount = existing.UsageCount
			input.LastUsed = existing.LastUsed
			input.UpdatedAt = now.UnixMilli()
			templates[i] = input
			found = true
			break
		}
		if !found {
			// Unknown id: the stored collection stays untouched.
			return input, nil
		}
	}

	raw, err := encodeTemplates(templates)
	if err != nil {
		return domain.Template{}, err
	}
	if err := r.gateway.Put(ctx, storage.KeyTemplates, raw); err != nil {
		return domain.Template{}, errors.Wrap(err, "write templates")
	}
	return input, nil
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	templates, err := r.List(ctx)
	if err != nil {
		return err
	}

	filtered := templates[:0]
	for _, t := range templates {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}

	raw, err := encodeTemplates(filtered)
	if err != nil {
		return err
	}
	return errors.Wrap(r.gateway.Put(ctx, storage.KeyTemplates, raw), "write templates")
}

func (r *templateRepo) RecordUsage(ctx context.Context, id string) error {
	templates, err := r.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range templates {
		if templates[i].ID == id {
			templates[i].LastUsed = r.now().UnixMilli()
			templates[i].UsageCount++
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	raw, err := encodeTemplates(templates)
	if err != nil {
		return err
	}
	return errors.Wrap(r.gateway.Put(ctx, storage.KeyTemplates, raw), "write templates")
}
