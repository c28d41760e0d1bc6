package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/promptdeck/promptdeck/internal/command"
	"github.com/promptdeck/promptdeck/internal/domain"
)

// findTemplate resolves arg against the stored collection. An exact id wins;
// otherwise arg may be a unique id prefix or an exact (case-insensitive)
// title.
func findTemplate(ctx context.Context, boundary *command.Dispatcher, arg string) (domain.Template, error) {
	result, err := boundary.Dispatch(ctx, command.ListTemplates{})
	if err != nil {
		return domain.Template{}, err
	}
	templates := result.(command.TemplatesResult).Templates

	var matches []domain.Template
	for _, t := range templates {
		if t.ID == arg {
			return t, nil
		}
		if strings.HasPrefix(t.ID, arg) || strings.EqualFold(t.Title, arg) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Template{}, fmt.Errorf("no template matches %q", arg)
	case 1:
		return matches[0], nil
	default:
		return domain.Template{}, fmt.Errorf("%q matches %d templates, be more specific", arg, len(matches))
	}
}

// parseVars turns repeated name=value flags into a value map.
func parseVars(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var %q, expected name=value", pair)
		}
		values[strings.TrimSpace(name)] = value
	}
	return values, nil
}
