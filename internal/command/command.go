// Package command is the message boundary between presentation surfaces and
// the stores. Each command is its own type behind a sealed interface, so
// dispatch is an exhaustive type switch instead of string matching, and
// every response shape is known at compile time.
package command

import (
	"github.com/promptdeck/promptdeck/internal/domain"
)

// Command is the sealed request union.
type Command interface {
	isCommand()
}

type ListTemplates struct{}

type SaveTemplate struct {
	Template domain.Template
}

type DeleteTemplate struct {
	TemplateID string
}

type RecordUsage struct {
	TemplateID string
}

type ListCategories struct{}

type SaveCategory struct {
	Category domain.Category
}

type DeleteCategory struct {
	CategoryID string
}

type CountsByCategory struct{}

func (ListTemplates) isCommand()    {}
func (SaveTemplate) isCommand()     {}
func (DeleteTemplate) isCommand()   {}
func (RecordUsage) isCommand()      {}
func (ListCategories) isCommand()   {}
func (SaveCategory) isCommand()     {}
func (DeleteCategory) isCommand()   {}
func (CountsByCategory) isCommand() {}

// Result is the sealed response union.
type Result interface {
	isResult()
}

type TemplatesResult struct {
	Templates []domain.Template `json:"templates"`
}

// AckResult acknowledges a mutation. Success is false only when the
// operation failed at the storage layer.
type AckResult struct {
	Success bool `json:"success"`
}

type CategoriesResult struct {
	Success    bool              `json:"success"`
	Categories []domain.Category `json:"categories"`
}

type CategoryResult struct {
	Success  bool            `json:"success"`
	Category domain.Category `json:"category"`
}

type CountsResult struct {
	Counts map[string]int `json:"counts"`
}

func (TemplatesResult) isResult()  {}
func (AckResult) isResult()        {}
func (CategoriesResult) isResult() {}
func (CategoryResult) isResult()   {}
func (CountsResult) isResult()     {}
