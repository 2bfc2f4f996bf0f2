package catalog

import "fmt"

// Index is the read-optimized view of the allergen catalog. It is built
// once at startup and never mutated afterwards, so it is safe for
// concurrent use by every request handler without locking.
type Index struct {
	byCategory map[Category][]Definition
	labels     map[string]string
}

// BuildCategoryIndex collapses the grouped definitions into one ordered
// list per category. Definition order within a category follows group
// order, then item order within each group. Duplicate keys are kept as-is;
// consumers rendering selection lists must tolerate them.
func BuildCategoryIndex(groups []Group) map[Category][]Definition {
	byCategory := make(map[Category][]Definition)
	for _, g := range groups {
		byCategory[g.Category] = append(byCategory[g.Category], g.Items...)
	}
	return byCategory
}

// BuildFlatLabelIndex flattens a category index into a single key -> label
// map spanning all categories. On a cross-category key collision the label
// from the later category wins; categories are iterated in the order
// returned by Categories so the winner is deterministic.
func BuildFlatLabelIndex(byCategory map[Category][]Definition) map[string]string {
	labels := make(map[string]string)
	for _, c := range Categories() {
		for _, d := range byCategory[c] {
			labels[d.Key] = d.Label
		}
	}
	return labels
}

// LabelConflict records a key that is defined with two different labels,
// which the flat index would otherwise resolve by silently dropping one.
type LabelConflict struct {
	Key    string
	Labels []string
}

// FindLabelConflicts reports every key mapped to more than one distinct
// label across the category index. A key repeated with the same label is
// not a conflict.
func FindLabelConflicts(byCategory map[Category][]Definition) []LabelConflict {
	seen := make(map[string][]string)
	var order []string
	for _, c := range Categories() {
		for _, d := range byCategory[c] {
			labels := seen[d.Key]
			duplicate := false
			for _, l := range labels {
				if l == d.Label {
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}
			if len(labels) == 1 {
				order = append(order, d.Key)
			}
			seen[d.Key] = append(labels, d.Label)
		}
	}

	var conflicts []LabelConflict
	for _, key := range order {
		conflicts = append(conflicts, LabelConflict{Key: key, Labels: seen[key]})
	}
	return conflicts
}

// NewIndex builds the catalog index from the given groups. It fails if any
// key carries conflicting labels so that a bad catalog stops the process
// at startup instead of shipping a flat index with a missing label.
func NewIndex(groups []Group) (*Index, error) {
	byCategory := BuildCategoryIndex(groups)
	if conflicts := FindLabelConflicts(byCategory); len(conflicts) > 0 {
		c := conflicts[0]
		return nil, fmt.Errorf("catalog: key %q defined with conflicting labels %v (%d conflicting keys total)",
			c.Key, c.Labels, len(conflicts))
	}
	return &Index{
		byCategory: byCategory,
		labels:     BuildFlatLabelIndex(byCategory),
	}, nil
}

// MustNewIndex is NewIndex for static catalogs known to be conflict-free,
// such as the built-in definition groups.
func MustNewIndex(groups []Group) *Index {
	idx, err := NewIndex(groups)
	if err != nil {
		panic(err)
	}
	return idx
}

// CategoryAllergens returns the ordered definitions for one category. The
// returned slice is shared and must not be modified.
func (idx *Index) CategoryAllergens(c Category) []Definition {
	return idx.byCategory[c]
}

// Label resolves an allergen key to its display label.
func (idx *Index) Label(key string) (string, bool) {
	label, ok := idx.labels[key]
	return label, ok
}

// Known reports whether the key appears anywhere in the catalog.
func (idx *Index) Known(key string) bool {
	_, ok := idx.labels[key]
	return ok
}

// Labels returns a copy of the flat key -> label map.
func (idx *Index) Labels() map[string]string {
	out := make(map[string]string, len(idx.labels))
	for k, v := range idx.labels {
		out[k] = v
	}
	return out
}
