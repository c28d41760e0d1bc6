// Package service wraps the repositories with input validation and default
// data. The original UI validated inputs in the presentation layer only;
// here the checks live in front of the stores so no surface can skip them.
package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/repository"
	"github.com/promptdeck/promptdeck/internal/storage"
)

type Service struct {
	templates  repository.TemplateRepository
	categories repository.CategoryRepository
	gateway    storage.Gateway
	validate   *validator.Validate
}

func New(templates repository.TemplateRepository, categories repository.CategoryRepository, gateway storage.Gateway) *Service {
	return &Service{
		templates:  templates,
		categories: categories,
		gateway:    gateway,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

type templateInput struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

type categoryInput struct {
	Name  string `validate:"required"`
	Color string `validate:"required"`
}

func (s *Service) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	return s.templates.List(ctx)
}

func (s *Service) SaveTemplate(ctx context.Context, input domain.Template) (domain.Template, error) {
	if err := s.validate.Struct(templateInput{Title: input.Title, Content: input.Content}); err != nil {
		return domain.Template{}, validationError(err)
	}
	if input.Category == "" {
		input.Category = domain.DefaultCategoryID
	}
	return s.templates.Save(ctx, input)
}

func (s *Service) DeleteTemplate(ctx context.Context, id string) error {
	return s.templates.Delete(ctx, id)
}

func (s *Service) RecordUsage(ctx context.Context, id string) error {
	return s.templates.RecordUsage(ctx, id)
}

func (s *Service) GetTemplate(ctx context.Context, id string) (domain.Template, bool, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return domain.Template{}, false, err
	}
	for _, t := range templates {
		if t.ID == id {
			return t, true, nil
		}
	}
	return domain.Template{}, false, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// SaveCategory validates the input and rejects names already taken by
// another category, compared case-insensitively.
func (s *Service) SaveCategory(ctx context.Context, input domain.Category) (domain.Category, error) {
	if input.Color == "" {
		input.Color = domain.ColorBlue
	}
	if err := s.validate.Struct(categoryInput{Name: input.Name, Color: string(input.Color)}); err != nil {
		return domain.Category{}, validationError(err)
	}
	if !input.Color.Valid() {
		return domain.Category{}, domain.ValidationError{Field: "color", Reason: "not a palette color"}
	}

	existing, err := s.categories.List(ctx)
	if err != nil {
		return domain.Category{}, err
	}
	for _, c := range existing {
		if c.ID != input.ID && strings.EqualFold(c.Name, input.Name) {
			return domain.Category{}, domain.ValidationError{Field: "name", Reason: "a category with this name already exists"}
		}
	}

	return s.categories.Save(ctx, input)
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *Service) CountsByCategory(ctx context.Context) (map[string]int, error) {
	return s.categories.CountsByCategory(ctx)
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return domain.ValidationError{
			Field:  strings.ToLower(fieldErrs[0].Field()),
			Reason: "must not be empty",
		}
	}
	return err
}
