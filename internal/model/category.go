package model

import "fmt"

// Category labels a transaction for aggregation. The set is fixed and
// partitioned by transaction type; Other belongs to both partitions.
type Category string

const (
	// Income categories.
	CategorySalary      Category = "Salary"
	CategoryBusiness    Category = "Business"
	CategoryInvestments Category = "Investments"
	CategoryGifts       Category = "Gifts"

	// Expense categories.
	CategoryFood          Category = "Food"
	CategoryHousing       Category = "Housing"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"

	// CategoryOther is valid for both types and is the fallback for
	// records that predate the category field.
	CategoryOther Category = "Other"
)

// DefaultCategory is the fallback used when no category is known.
const DefaultCategory = CategoryOther

// allCategories fixes the declaration order. The index in this slice is the
// category's ordinal, used as the deterministic tie-break when sorting
// aggregates with equal totals.
var allCategories = []Category{
	CategorySalary,
	CategoryBusiness,
	CategoryInvestments,
	CategoryGifts,
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

var incomeCategories = []Category{
	CategorySalary,
	CategoryBusiness,
	CategoryInvestments,
	CategoryGifts,
	CategoryOther,
}

var expenseCategories = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategoryOther,
}

var categoryOrdinals = func() map[Category]int {
	m := make(map[Category]int, len(allCategories))
	for i, c := range allCategories {
		m[c] = i
	}
	return m
}()

// RGB is a display color. The palette is fixed per category so charts stay
// consistent across sessions.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var categoryColors = map[Category]RGB{
	CategorySalary:        {100, 200, 100},
	CategoryBusiness:      {100, 255, 100},
	CategoryInvestments:   {50, 150, 50},
	CategoryGifts:         {150, 255, 150},
	CategoryFood:          {255, 100, 100},
	CategoryHousing:       {200, 50, 50},
	CategoryTransport:     {100, 100, 255},
	CategoryUtilities:     {100, 200, 255},
	CategoryEntertainment: {255, 165, 0},
	CategoryShopping:      {255, 105, 180},
	CategoryHealth:        {255, 50, 50},
	CategoryEducation:     {150, 100, 255},
	CategoryOther:         {160, 160, 160},
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// CategoriesFor returns the categories selectable for the given transaction
// type, in declaration order.
func CategoriesFor(t TransactionType) []Category {
	var src []Category
	if t == TypeIncome {
		src = incomeCategories
	} else {
		src = expenseCategories
	}
	out := make([]Category, len(src))
	copy(out, src)
	return out
}

// DefaultCategoryFor returns the first conventional category for the given
// type: Salary for income, Food for expense. Selecting a type in the entry
// form resets the staged category to this.
func DefaultCategoryFor(t TransactionType) Category {
	if t == TypeIncome {
		return CategorySalary
	}
	return CategoryFood
}

// Valid reports whether c is one of the 13 known categories.
func (c Category) Valid() bool {
	_, ok := categoryOrdinals[c]
	return ok
}

// Ordinal returns the category's position in declaration order. Unknown
// categories sort last.
func (c Category) Ordinal() int {
	if i, ok := categoryOrdinals[c]; ok {
		return i
	}
	return len(allCategories)
}

// Color returns the category's fixed display color.
func (c Category) Color() RGB {
	if rgb, ok := categoryColors[c]; ok {
		return rgb
	}
	return categoryColors[CategoryOther]
}

// ParseCategory converts a serialized category name back to its constant.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
