package equipment

import "strconv"

// Category is the derived per-category availability aggregate. It is
// never persisted; it is recomputed from scratch on every equipment
// change.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available int    `json:"available"`
	Total     int    `json:"total"`
	Color     string `json:"color"`
}

const DefaultCategoryColor = "#757575"

var categoryColors = map[string]string{
	"Cardio":       "#4CAF50",
	"Strength":     "#2196F3",
	"Free Weights": "#FF9800",
	"Functional":   "#9C27B0",
}

// ColorFor maps a category name to its display color. Unknown
// categories get the default color.
func ColorFor(name string) string {
	if c, ok := categoryColors[name]; ok {
		return c
	}
	return DefaultCategoryColor
}

// BuildCategories groups equipment by category and counts availability.
// Category order is the first-seen order of the input, so two items
// with the same category string always land in the same entry
// regardless of where they appear.
func BuildCategories(items []Equipment) []Category {
	index := make(map[string]int, len(items))
	categories := make([]Category, 0, len(items))

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(categories)
			index[item.Category] = i
			categories = append(categories, Category{
				ID:    strconv.Itoa(i + 1),
				Name:  item.Category,
				Color: ColorFor(item.Category),
			})
		}
		categories[i].Total++
		if item.IsAvailable {
			categories[i].Available++
		}
	}

	return categories
}
