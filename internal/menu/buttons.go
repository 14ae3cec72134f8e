package menu

import (
	"fmt"

	"fabricshop/bot/internal/domain"
	"fabricshop/bot/internal/message"
	"fabricshop/bot/internal/payload"
)

// CategoryItems converts root categories into paginatable items, preserving
// catalog order.
func CategoryItems(categories []domain.Category) []Item {
	items := make([]Item, 0, len(categories))
	for _, cat := range categories {
		items = append(items, Item{ID: cat.ID, Name: cat.Name})
	}
	return items
}

// SubcategoryItems converts a category's subcategories into paginatable items.
func SubcategoryItems(subs []domain.SubcategoryRef) []Item {
	items := make([]Item, 0, len(subs))
	for _, sub := range subs {
		items = append(items, Item{ID: sub.ID, Name: sub.Name})
	}
	return items
}

// CategoryButtons renders one page of the category menu as a button-template
// message: one button per item, then exactly one navigation button. A "more"
// button wins when further pages exist; otherwise subcategory pages and
// non-first pages get a single "back" button.
func CategoryButtons(items []Item, page int, size int) message.Message {
	return buttonsFor(items, page, size, false, "")
}

// SubcategoryButtons renders one page of a category's subcategory menu.
// parentID is inlined into the "more" payload so the next page can be served
// statelessly.
func SubcategoryButtons(items []Item, page int, size int, parentID string) message.Message {
	return buttonsFor(items, page, size, true, parentID)
}

func buttonsFor(items []Item, page, size int, isSub bool, parentID string) message.Message {
	p := Paginate(items, page, size)

	buttons := make([]message.Button, 0, len(p.Items)+1)
	for _, item := range p.Items {
		var pl payload.Payload
		if isSub {
			pl = payload.SelectSubcategory(item.ID)
		} else {
			pl = payload.SelectCategory(item.ID)
		}
		buttons = append(buttons, message.PostbackButton(item.Name, pl.Encode()))
	}

	if nav, ok := navButton(p, isSub, parentID); ok {
		buttons = append(buttons, nav)
	}

	return message.NewButtonTemplate(headerText(p, isSub), buttons)
}

func navButton(p Page, isSub bool, parentID string) (message.Button, bool) {
	if p.HasMore {
		var pl payload.Payload
		var title string
		if isSub {
			pl = payload.MoreSubcategories(parentID, p.Index+1)
			title = fmt.Sprintf(message.TitleMoreSubs, p.Index+2, p.TotalPages)
		} else {
			pl = payload.MoreCategories(p.Index + 1)
			title = fmt.Sprintf(message.TitleMoreCategories, p.Index+2, p.TotalPages)
		}
		return message.PostbackButton(title, pl.Encode()), true
	}

	if isSub {
		return message.PostbackButton(message.TitleBackToCats, payload.BackToCategories().Encode()), true
	}
	if p.Index > 0 {
		return message.PostbackButton(message.TitleBackToMain, payload.BrowseCategories().Encode()), true
	}

	return message.Button{}, false
}

func headerText(p Page, isSub bool) string {
	switch {
	case isSub:
		return message.TextChooseSub
	case p.Index == 0:
		return message.TextMenuHeaderFirst
	default:
		return message.TextMenuHeaderMore
	}
}
