// Package boltstore implements the repository interfaces on top of the
// storage gateway. Each collection lives under a single key as one JSON
// array, so every mutation rewrites the whole collection.
package boltstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/promptdeck/promptdeck/internal/domain"
)

// newID builds an id from the current time and a random suffix, e.g.
// "tmpl_1717171717171_4f9b2c1d8". Uniqueness is probabilistic rather than
// guaranteed, which is acceptable at this collection size.
func newID(prefix string, now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), suffix)
}

func decodeTemplates(raw []byte) ([]domain.Template, error) {
	if raw == nil {
		return nil, nil
	}
	var templates []domain.Template
	if err := json.Unmarshal(raw, &templates); err != nil {
		return nil, errors.Wrap(err, "decode template collection")
	}
	return templates, nil
}

func encodeTemplates(templates []domain.Template) ([]byte, error) {
	if templates == nil {
		templates = []domain.Template{}
	}
	raw, err := json.Marshal(templates)
	if err != nil {
		return nil, errors.Wrap(err, "encode template collection")
	}
	return raw, nil
}

func decodeCategories(raw []byte) ([]domain.Category, error) {
	if raw == nil {
		return nil, nil
	}
	var categories []domain.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		return nil, errors.Wrap(err, "decode category collection")
	}
	return categories, nil
}

func encodeCategories(categories []domain.Category) ([]byte, error) {
	if categories == nil {
		categories = []domain.Category{}
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return nil, errors.Wrap(err, "encode category collection")
	}
	return raw, nil
}
