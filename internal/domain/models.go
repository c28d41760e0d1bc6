package domain

import "time"

// DefaultCategoryID is the reserved id of the built-in category. It always
// exists and can never be deleted; templates from deleted categories are
// reassigned to it.
const DefaultCategoryID = "general"

// Template is a stored prompt with {{placeholder}} markers in its content.
// Timestamps are epoch milliseconds. CreatedAt, UsageCount and LastUsed are
// owned by the store and never overwritten by a general save.
type Template struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	Favorite    bool   `json:"favorite"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
	LastUsed    int64  `json:"lastUsed"`
	UsageCount  int    `json:"usageCount"`
}

// Category groups templates. TemplateCount is a display value recomputed from
// the template collection on demand, never authoritative.
type Category struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Color         Color     `json:"color"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	TemplateCount int       `json:"templateCount"`
}

// Color is one of the fixed palette values a category can carry.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorPurple Color = "purple"
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorPink   Color = "pink"
	ColorGray   Color = "gray"
)

// Palette returns all valid category colors.
func Palette() []Color {
	return []Color{
		ColorBlue, ColorGreen, ColorPurple, ColorRed,
		ColorOrange, ColorYellow, ColorPink, ColorGray,
	}
}

// Valid reports whether c is a palette color.
func (c Color) Valid() bool {
	for _, p := range Palette() {
		if c == p {
			return true
		}
	}
	return false
}

// DefaultCategory returns the built-in category synthesized when it is
// missing from storage.
func DefaultCategory(now time.Time) Category {
	return Category{
		ID:          DefaultCategoryID,
		Name:        "General",
		Description: "Default category for all templates",
		Color:       ColorGray,
		IsDefault:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
