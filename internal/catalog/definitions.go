package catalog

// Definition is one selectable allergen: the key stored in the database and
// the label shown to users.
type Definition struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Group is an ordered block of definitions assigned to one category. The
// group label is used for optgroup-style rendering in selection forms.
type Group struct {
	Category Category
	Label    string
	Items    []Definition
}

// Acids and exfoliants
var acidAllergens = []Definition{
	{"glycolic_acid", "Glycolic Acid"},
	{"salicylic_acid", "Salicylic Acid"},
	{"lactic_acid", "Lactic Acid"},
	{"citric_acid", "Citric Acid"},
	{"benzoic_acid", "Benzoic Acid"},
	{"sorbic_acid", "Sorbic Acid"},
}

// Botanical/essential oils
var botanicalAllergens = []Definition{
	{"tea_tree_oil", "Tea Tree Oil"},
	{"lavender_oil", "Lavender Oil"},
	{"peppermint_oil", "Peppermint Oil"},
	{"eucalyptus_oil", "Eucalyptus Oil"},
	{"rose_oil", "Rose Oil"},
	{"chamomile", "Chamomile"},
	{"ylang_ylang", "Ylang Ylang"},
	{"sandalwood", "Sandalwood"},
	{"bergamot", "Bergamot Oil"},
	{"lemongrass", "Lemongrass Oil"},
}

// Colorants and dyes
var colorantAllergens = []Definition{
	{"ci_dyes", "CI Dyes (Color Index)"},
	{"fd_c_dyes", "FD&C Dyes"},
	{"carmine", "Carmine (CI 75470)"},
	{"iron_oxides", "Iron Oxides"},
	{"mica", "Mica"},
}

var contactAllergens = []Definition{
	{"nickel", "Nickel"},
	{"latex", "Latex"},
	{"lanolin", "Lanolin"},
}

var dustAllergens = []Definition{
	{"dust_mite", "Dust Mite"},
	{"mold_spores", "Mold Spores"},
	{"pet_dander", "Pet Dander"},
}

var fragranceAllergens = []Definition{
	{"linalool", "Linalool"},
	{"limonene", "Limonene"},
	{"geraniol", "Geraniol"},
	{"citronellol", "Citronellol"},
	{"eugenol", "Eugenol"},
}

var foodAllergens = []Definition{
	{"peanut", "Peanut"},
	{"tree_nut", "Tree Nut (General)"},
	{"gluten", "Gluten / Wheat"},
	{"dairy", "Dairy / Milk"},
	{"soy", "Soy"},
	{"shellfish", "Shellfish"},
}

var otherAllergens = []Definition{
	{"retinol", "Retinol/Retinoids"},
	{"vitamin_c", "Vitamin C (L-Ascorbic Acid)"},
	{"niacinamide", "Niacinamide"},
	{"propylene_glycol", "Propylene Glycol"},
	{"butylene_glycol", "Butylene Glycol"},
	{"dimethicone", "Dimethicone"},
	{"tocopherol", "Tocopherol (Vitamin E)"},
	{"alcohol_denat", "Alcohol Denat"},
	{"isopropyl_alcohol", "Isopropyl Alcohol"},
}

var pollenAllergens = []Definition{
	{"birch_pollen", "Birch Pollen"},
	{"chrysanthemum", "Chrysanthemum"},
	{"goldenrod", "Goldenrod"},
	{"grass_pollen", "Grass Pollen"},
	{"humulus_japonicus", "Humulus Japonicus"},
	{"lamb's_quarters", "Lamb's Quarters"},
	{"mulberry", "Mulberry"},
	{"locust", "Locust"},
	{"oak_pollen", "Oak Pollen"},
	{"pine", "Pine"},
	{"plane_tree", "Plane Tree"},
	{"ragweed", "Ragweed Pollen"},
	{"rape", "Rape"},
	{"spruce", "Spruce"},
	{"tree_pollen", "Tree Pollen"},
	{"queen_palm", "Queen Palm"},
}

var preservativeAllergens = []Definition{
	{"parabens", "Parabens (Methylparaben, Propylparaben, etc.)"},
	{"formaldehyde", "Formaldehyde"},
	{"formaldehyde_releasers", "Formaldehyde Releasers"},
	{"methylisothiazolinone", "Methylisothiazolinone (MI)"},
	{"methylchloroisothiazolinone", "Methylchloroisothiazolinone (MCI)"},
	{"phenoxyethanol", "Phenoxyethanol"},
	{"benzalkonium_chloride", "Benzalkonium Chloride"},
	{"bronopol", "Bronopol"},
	{"iodopropynyl_butylcarbamate", "Iodopropynyl Butylcarbamate"},
}

var proteinAllergens = []Definition{
	{"collagen", "Collagen"},
	{"keratin", "Keratin"},
	{"silk_protein", "Silk Protein"},
	{"wheat_protein", "Wheat Protein"},
	{"soy_protein", "Soy Protein"},
	{"beeswax", "Beeswax"},
	{"propolis", "Propolis"},
	{"royal_jelly", "Royal Jelly"},
}

// UV filters / sunscreen ingredients
var sunscreenAllergens = []Definition{
	{"oxybenzone", "Oxybenzone (Benzophenone-3)"},
	{"octinoxate", "Octinoxate (Octyl Methoxycinnamate)"},
	{"avobenzone", "Avobenzone"},
	{"octocrylene", "Octocrylene"},
	{"homosalate", "Homosalate"},
	{"titanium_dioxide", "Titanium Dioxide"},
	{"zinc_oxide", "Zinc Oxide"},
}

var surfactantAllergens = []Definition{
	{"sls", "Sodium Lauryl Sulfate (SLS)"},
	{"sles", "Sodium Laureth Sulfate (SLES)"},
	{"cocamidopropyl_betaine", "Cocamidopropyl Betaine"},
	{"peg_compounds", "PEG Compounds (Polyethylene Glycol)"},
	{"polysorbates", "Polysorbates"},
	{"sodium_lauroyl_sarcosinate", "Sodium Lauroyl Sarcosinate"},
}

// DefinitionGroups returns the curated allergen groups in presentation
// order. Group order within a category determines the order of that
// category's selection list.
func DefinitionGroups() []Group {
	return []Group{
		{CategoryContact, "Acids & Exfoliants", acidAllergens},
		{CategoryContact, "Botanicals & Essential Oils", botanicalAllergens},
		{CategoryContact, "Colorants & Dyes", colorantAllergens},
		{CategoryContact, "General Contact Allergens", contactAllergens},
		{CategoryContact, "Cosmetic Fragrances", fragranceAllergens},
		{CategoryContact, "Cosmetic Preservatives", preservativeAllergens},
		{CategoryContact, "Proteins & Extracts", proteinAllergens},
		{CategoryContact, "Sunscreen Ingredients", sunscreenAllergens},
		{CategoryContact, "Surfactants & Emulsifiers", surfactantAllergens},
		{CategoryFood, "Major Food Allergens", foodAllergens},
		{CategoryInhalant, "Environmental Inhalants", dustAllergens},
		{CategoryInhalant, "Pollen Allergens", pollenAllergens},
		{CategoryOther, "Other General Contact", otherAllergens},
	}
}
