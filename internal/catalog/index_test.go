package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCategoryIndexPreservesOrderAndCount(t *testing.T) {
	groups := []Group{
		{CategoryFood, "Group A", []Definition{{"peanut", "Peanut"}, {"soy", "Soy"}}},
		{CategoryContact, "Group B", []Definition{{"nickel", "Nickel"}}},
		{CategoryFood, "Group C", []Definition{{"dairy", "Dairy / Milk"}}},
	}

	idx := BuildCategoryIndex(groups)

	// Food entries concatenate in group order, then item order
	require.Len(t, idx[CategoryFood], 3)
	assert.Equal(t, "peanut", idx[CategoryFood][0].Key)
	assert.Equal(t, "soy", idx[CategoryFood][1].Key)
	assert.Equal(t, "dairy", idx[CategoryFood][2].Key)

	require.Len(t, idx[CategoryContact], 1)
	assert.Equal(t, "nickel", idx[CategoryContact][0].Key)
}

func TestBuildCategoryIndexKeepsDuplicates(t *testing.T) {
	groups := []Group{
		{CategoryContact, "Group A", []Definition{{"latex", "Latex"}}},
		{CategoryContact, "Group B", []Definition{{"latex", "Latex"}}},
	}

	idx := BuildCategoryIndex(groups)

	// No deduplication: both entries survive for downstream consumers
	assert.Len(t, idx[CategoryContact], 2)
}

func TestBuildFlatLabelIndexMapsUniqueKeys(t *testing.T) {
	groups := []Group{
		{CategoryFood, "Foods", []Definition{{"peanut", "Peanut"}}},
		{CategoryInhalant, "Pollens", []Definition{{"ragweed", "Ragweed Pollen"}}},
	}

	labels := BuildFlatLabelIndex(BuildCategoryIndex(groups))

	assert.Equal(t, "Peanut", labels["peanut"])
	assert.Equal(t, "Ragweed Pollen", labels["ragweed"])
	assert.Len(t, labels, 2)
}

func TestBuildFlatLabelIndexLastCategoryWins(t *testing.T) {
	// "mystery" is defined in food and again in other. Categories iterate
	// food -> contact -> inhalant -> other, so the other-category label
	// must win regardless of group declaration order.
	groups := []Group{
		{CategoryOther, "Others", []Definition{{"mystery", "Mystery (Other)"}}},
		{CategoryFood, "Foods", []Definition{{"mystery", "Mystery (Food)"}}},
	}

	labels := BuildFlatLabelIndex(BuildCategoryIndex(groups))

	assert.Equal(t, "Mystery (Other)", labels["mystery"])
}

func TestFindLabelConflicts(t *testing.T) {
	groups := []Group{
		{CategoryFood, "Foods", []Definition{{"mystery", "Mystery (Food)"}, {"peanut", "Peanut"}}},
		{CategoryOther, "Others", []Definition{{"mystery", "Mystery (Other)"}}},
	}

	conflicts := FindLabelConflicts(BuildCategoryIndex(groups))

	require.Len(t, conflicts, 1)
	assert.Equal(t, "mystery", conflicts[0].Key)
	assert.Equal(t, []string{"Mystery (Food)", "Mystery (Other)"}, conflicts[0].Labels)
}

func TestFindLabelConflictsIgnoresSameLabel(t *testing.T) {
	groups := []Group{
		{CategoryFood, "Foods", []Definition{{"soy", "Soy"}}},
		{CategoryContact, "Proteins", []Definition{{"soy", "Soy"}}},
	}

	assert.Empty(t, FindLabelConflicts(BuildCategoryIndex(groups)))
}

func TestNewIndexRejectsConflictingCatalog(t *testing.T) {
	groups := []Group{
		{CategoryFood, "Foods", []Definition{{"mystery", "Mystery (Food)"}}},
		{CategoryOther, "Others", []Definition{{"mystery", "Mystery (Other)"}}},
	}

	idx, err := NewIndex(groups)

	assert.Nil(t, idx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}

func TestNewIndexWithBuiltinDefinitions(t *testing.T) {
	idx, err := NewIndex(DefinitionGroups())
	require.NoError(t, err)

	label, ok := idx.Label("peanut")
	require.True(t, ok)
	assert.Equal(t, "Peanut", label)

	assert.True(t, idx.Known("linalool"))
	assert.False(t, idx.Known("unobtainium"))

	// Contact list starts with the acids group, in declaration order
	contact := idx.CategoryAllergens(CategoryContact)
	require.NotEmpty(t, contact)
	assert.Equal(t, "glycolic_acid", contact[0].Key)

	// Flat map copy is detached from the index
	labels := idx.Labels()
	labels["peanut"] = "tampered"
	fresh, _ := idx.Label("peanut")
	assert.Equal(t, "Peanut", fresh)
}

func TestCategoryDisplay(t *testing.T) {
	assert.Equal(t, "Food Allergens", CategoryFood.Display())
	assert.Equal(t, "Contact/Topical Allergens", CategoryContact.Display())
	assert.Equal(t, "Inhalant Allergens", CategoryInhalant.Display())
	assert.Equal(t, "Other Allergens", CategoryOther.Display())
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryFood.Valid())
	assert.False(t, Category("mineral").Valid())
	assert.False(t, Category("").Valid())
}
