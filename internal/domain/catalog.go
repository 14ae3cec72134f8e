package domain

// SubcategoryRef is a subcategory entry under a root category.
type SubcategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category is a root category with its ordered subcategories. Ordering
// follows the source record order, pagination depends on it being stable.
type Category struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	SubCategories []SubcategoryRef `json:"sub_categories"`
}

// Catalog is the immutable two-level category tree built from the Categories
// table. A Catalog value is never mutated after construction; refreshes build
// a new one and swap it in wholesale.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Empty reports whether the catalog has no root categories.
func (c Catalog) Empty() bool {
	return len(c.Categories) == 0
}

// FindCategory returns the root category with the given id.
func (c Catalog) FindCategory(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// FindSubcategory scans every category's subcategories in catalog order and
// returns the first match together with its owning parent. A subcategory is
// attached under exactly one parent at build time, so the first match is the
// only one.
func (c Catalog) FindSubcategory(id string) (SubcategoryRef, Category, bool) {
	for _, cat := range c.Categories {
		for _, sub := range cat.SubCategories {
			if sub.ID == id {
				return sub, cat, true
			}
		}
	}
	return SubcategoryRef{}, Category{}, false
}
