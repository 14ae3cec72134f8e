package payload

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the navigation transitions a button payload can encode.
type Kind string

const (
	KindFallback          Kind = "fallback"
	KindBrowseCategories  Kind = "browse_categories"
	KindBackToCategories  Kind = "back_to_categories"
	KindMoreCategories    Kind = "more_categories"
	KindMoreSubcategories Kind = "more_subcategories"
	KindSelectCategory    Kind = "category"
	KindSelectSubcategory Kind = "subcategory"
	KindViewProducts      Kind = "view_products"
	KindHelp              Kind = "help"
	KindAffirm            Kind = "yes"
	KindDecline           Kind = "no"
)

func (k Kind) String() string {
	return string(k)
}

const (
	prefixMoreCategories    = "more_categories_"
	prefixMoreSubcategories = "more_subcategories_"
	prefixSelectCategory    = "category_"
	prefixSelectSubcategory = "subcategory_"
	prefixViewProducts      = "view_products_"
)

// Payload is one decoded navigation intent. Only the fields relevant to the
// Kind are set: Page for the pagination kinds, ParentID for subcategory
// pagination, ID for the selection kinds.
type Payload struct {
	Kind     Kind
	ID       string
	ParentID string
	Page     int
}

// Fallback is the payload every unparseable string decodes to.
var Fallback = Payload{Kind: KindFallback}

func BrowseCategories() Payload {
	return Payload{Kind: KindBrowseCategories}
}

func BackToCategories() Payload {
	return Payload{Kind: KindBackToCategories}
}

func MoreCategories(page int) Payload {
	return Payload{Kind: KindMoreCategories, Page: page}
}

func MoreSubcategories(parentID string, page int) Payload {
	return Payload{Kind: KindMoreSubcategories, ParentID: parentID, Page: page}
}

func SelectCategory(id string) Payload {
	return Payload{Kind: KindSelectCategory, ID: id}
}

func SelectSubcategory(id string) Payload {
	return Payload{Kind: KindSelectSubcategory, ID: id}
}

func ViewProducts(id string) Payload {
	return Payload{Kind: KindViewProducts, ID: id}
}

func Help() Payload {
	return Payload{Kind: KindHelp}
}

// Encode serialises the payload into the opaque string carried by a button.
// Fallback and unknown kinds encode to "", which decodes back to Fallback.
func (p Payload) Encode() string {
	switch p.Kind {
	case KindBrowseCategories, KindBackToCategories, KindHelp, KindAffirm, KindDecline:
		return string(p.Kind)
	case KindMoreCategories:
		return fmt.Sprintf("%s%d", prefixMoreCategories, p.Page)
	case KindMoreSubcategories:
		return fmt.Sprintf("%s%s_%d", prefixMoreSubcategories, p.ParentID, p.Page)
	case KindSelectCategory:
		return prefixSelectCategory + p.ID
	case KindSelectSubcategory:
		return prefixSelectSubcategory + p.ID
	case KindViewProducts:
		return prefixViewProducts + p.ID
	default:
		return ""
	}
}

// Decode parses an inbound payload string. Anything that does not match the
// grammar, including negative or non-numeric page groups, decodes to
// Fallback, never an error.
//
// For more_subcategories the page is the last underscore-delimited group, so
// parent ids may themselves contain underscores. A parent id whose final
// segment is all digits remains ambiguous on the wire, the trailing group
// always wins.
func Decode(raw string) Payload {
	switch raw {
	case string(KindBrowseCategories):
		return BrowseCategories()
	case string(KindBackToCategories):
		return BackToCategories()
	case string(KindHelp):
		return Help()
	case string(KindAffirm):
		return Payload{Kind: KindAffirm}
	case string(KindDecline):
		return Payload{Kind: KindDecline}
	}

	switch {
	case strings.HasPrefix(raw, prefixMoreSubcategories):
		rest := strings.TrimPrefix(raw, prefixMoreSubcategories)
		cut := strings.LastIndex(rest, "_")
		if cut <= 0 {
			return Fallback
		}
		parentID := rest[:cut]
		page, ok := parsePage(rest[cut+1:])
		if !ok {
			return Fallback
		}
		return MoreSubcategories(parentID, page)

	case strings.HasPrefix(raw, prefixMoreCategories):
		page, ok := parsePage(strings.TrimPrefix(raw, prefixMoreCategories))
		if !ok {
			return Fallback
		}
		return MoreCategories(page)

	case strings.HasPrefix(raw, prefixSelectSubcategory):
		id := strings.TrimPrefix(raw, prefixSelectSubcategory)
		if id == "" {
			return Fallback
		}
		return SelectSubcategory(id)

	case strings.HasPrefix(raw, prefixViewProducts):
		id := strings.TrimPrefix(raw, prefixViewProducts)
		if id == "" {
			return Fallback
		}
		return ViewProducts(id)

	case strings.HasPrefix(raw, prefixSelectCategory):
		id := strings.TrimPrefix(raw, prefixSelectCategory)
		if id == "" {
			return Fallback
		}
		return SelectCategory(id)
	}

	return Fallback
}

func parsePage(s string) (int, bool) {
	page, err := strconv.Atoi(s)
	if err != nil || page < 0 {
		return 0, false
	}
	return page, true
}
