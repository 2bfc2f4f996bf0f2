package catalog

// Category is the broad allergen grouping a catalog entry belongs to.
// The set is closed: every allergen definition is assigned to exactly one
// of the values below.
type Category string

const (
	CategoryFood     Category = "food"
	CategoryContact  Category = "contact"
	CategoryInhalant Category = "inhalant"
	CategoryOther    Category = "other"
)

// Categories returns the closed category set in declaration order. The
// order is load-bearing: BuildFlatLabelIndex resolves cross-category key
// collisions by iterating categories in this order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryContact, CategoryInhalant, CategoryOther}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryContact, CategoryInhalant, CategoryOther:
		return true
	}
	return false
}

// Display returns the human-readable category label.
func (c Category) Display() string {
	switch c {
	case CategoryFood:
		return "Food Allergens"
	case CategoryContact:
		return "Contact/Topical Allergens"
	case CategoryInhalant:
		return "Inhalant Allergens"
	case CategoryOther:
		return "Other Allergens"
	}
	return string(c)
}
