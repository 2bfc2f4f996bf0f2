package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermatrack/backend/internal/catalog"
)

func TestAllergenDisplayName(t *testing.T) {
	idx, err := catalog.NewIndex(catalog.DefinitionGroups())
	require.NoError(t, err)

	a := Allergen{Category: catalog.CategoryFood, AllergenKey: "peanut"}
	assert.Equal(t, "Food Allergens: Peanut", a.DisplayName(idx))

	contact := Allergen{Category: catalog.CategoryContact, AllergenKey: "nickel"}
	assert.Equal(t, "Contact/Topical Allergens: Nickel", contact.DisplayName(idx))
}

func TestAllergenLabelFallsBackToRawKey(t *testing.T) {
	idx, err := catalog.NewIndex(catalog.DefinitionGroups())
	require.NoError(t, err)

	a := Allergen{Category: catalog.CategoryOther, AllergenKey: "house_blend"}
	assert.Equal(t, "house_blend", a.Label(idx))
	assert.Equal(t, "Other Allergens: house_blend", a.DisplayName(idx))
}

func TestAllergenDisplayNameWithoutKey(t *testing.T) {
	idx, err := catalog.NewIndex(catalog.DefinitionGroups())
	require.NoError(t, err)

	a := Allergen{Category: catalog.CategoryFood}
	assert.Equal(t, "Food Allergens: [No Allergen Selected]", a.DisplayName(idx))
}
