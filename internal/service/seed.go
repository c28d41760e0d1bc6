package service

import (
	"context"
	"log/slog"

	"github.com/promptdeck/promptdeck/internal/domain"
	"github.com/promptdeck/promptdeck/internal/storage"
)

// Seed installs the starter templates on a fresh database. It is a no-op as
// soon as the template collection has been written once, so clearing every
// template does not resurrect the starters.
func (s *Service) Seed(ctx context.Context) error {
	raw, err := s.gateway.Get(ctx, storage.KeyTemplates)
	if err != nil {
		return err
	}
	if raw != nil {
		return nil
	}

	for _, tmpl := range starterTemplates() {
		if _, err := s.templates.Save(ctx, tmpl); err != nil {
			return err
		}
	}
	slog.Debug("seeded starter templates", "count", len(starterTemplates()))
	return nil
}

func starterTemplates() []domain.Template {
	return []domain.Template{
		{
			Title:       "Summarize text",
			Description: "Condense a passage into a short summary",
			Category:    domain.DefaultCategoryID,
			Content:     "Summarize the following text clearly and concisely:\n\n{{content}}",
		},
		{
			Title:       "Professional email",
			Description: "Draft a polished email from rough notes",
			Category:    domain.DefaultCategoryID,
			Favorite:    true,
			Content:     "Write a professional email.\n\nSubject: {{subject}}\nRecipient: {{recipient}}\nPurpose: {{purpose}}\n\nKeep the tone polite, professional, and clear.",
		},
		{
			Title:       "Code review",
			Description: "Explain and review a snippet of code",
			Category:    domain.DefaultCategoryID,
			Content:     "Review the following code and explain:\n\n1. What it does\n2. How it works\n3. What could be improved\n\nCode:\n```\n{{code}}\n```",
		},
	}
}
