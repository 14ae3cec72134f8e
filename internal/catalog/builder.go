package catalog

import (
	"fabricshop/bot/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Build normalises flat category records into the two-level catalog tree.
// Records with no ParentCategory become roots; every other record is attached
// under each root whose id its ParentCategory contains. Source order is
// preserved on both levels. Build never fails: malformed records keep an
// empty name, and no input yields an empty catalog.
func Build(records []domain.Record) domain.Catalog {
	roots := make([]domain.Record, 0, len(records))
	children := make([]domain.Record, 0)

	for _, rec := range records {
		if rec.IsRoot() {
			roots = append(roots, rec)
		} else {
			children = append(children, rec)
		}
	}

	categories := make([]domain.Category, 0, len(roots))
	for _, root := range roots {
		subs := make([]domain.SubcategoryRef, 0)
		for _, child := range children {
			if child.ListContains(domain.FieldParentCategory, root.ID) {
				subs = append(subs, domain.SubcategoryRef{
					ID:   child.ID,
					Name: child.Name(),
				})
			}
		}

		categories = append(categories, domain.Category{
			ID:            root.ID,
			Name:          root.Name(),
			SubCategories: subs,
		})
	}

	log.Infof("Built catalog with %d main categories from %d records", len(categories), len(records))

	return domain.Catalog{Categories: categories}
}
