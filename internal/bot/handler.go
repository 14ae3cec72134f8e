package bot

import (
	"context"
	"fmt"

	"fabricshop/bot/internal/domain"
	"fabricshop/bot/internal/menu"
	"fabricshop/bot/internal/message"
	"fabricshop/bot/internal/payload"
	"fabricshop/bot/internal/store"

	log "github.com/sirupsen/logrus"
)

// Sender delivers one outbound message to a recipient.
type Sender interface {
	Send(ctx context.Context, recipientID string, msg message.Message) error
}

// CatalogSource provides the catalog snapshot a request works against.
type CatalogSource interface {
	Snapshot() domain.Catalog
}

// Handler is the navigation state machine. Every inbound event is resolved
// statelessly from the current catalog snapshot plus the decoded payload and
// ends in at most one outbound send. Catalog and lookup failures are absorbed
// into user-facing texts here; only delivery failures propagate to the
// caller.
type Handler struct {
	catalog  CatalogSource
	products store.RecordStore
	sender   Sender
	pageSize int
}

func NewHandler(catalog CatalogSource, products store.RecordStore, sender Sender, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = menu.DefaultPageSize
	}
	return &Handler{
		catalog:  catalog,
		products: products,
		sender:   sender,
		pageSize: pageSize,
	}
}

// HandleEvent resolves one inbound event to its reply and sends it.
func (h *Handler) HandleEvent(ctx context.Context, ev domain.Event) error {
	switch {
	case ev.Message != nil:
		return h.handleMessage(ctx, ev.SenderID, ev.Message)
	case ev.Postback != nil:
		return h.handlePostback(ctx, ev.SenderID, ev.Postback)
	default:
		log.Warnf("Ignoring event from %s with neither message nor postback", ev.SenderID)
		return nil
	}
}

func (h *Handler) handleMessage(ctx context.Context, senderID string, msg *domain.MessageEvent) error {
	if msg.QuickReplyPayload == payload.BrowseCategories().Encode() {
		return h.showCategories(ctx, senderID, 0)
	}

	// Any other message gets the welcome greeting with the browse and help
	// quick replies.
	welcome := message.NewQuickReply(message.TextWelcome,
		message.TextQuickReply(message.TitleBrowse, payload.BrowseCategories().Encode()),
		message.TextQuickReply(message.TitleHelp, payload.Help().Encode()),
	)
	return h.send(ctx, senderID, welcome)
}

func (h *Handler) handlePostback(ctx context.Context, senderID string, pb *domain.PostbackEvent) error {
	p := payload.Decode(pb.Payload)
	snapshot := h.catalog.Snapshot()

	switch p.Kind {
	case payload.KindBrowseCategories, payload.KindBackToCategories:
		// Back navigation always resets to the first page.
		return h.showCategories(ctx, senderID, 0)

	case payload.KindMoreCategories:
		return h.showCategories(ctx, senderID, p.Page)

	case payload.KindMoreSubcategories:
		parent, ok := snapshot.FindCategory(p.ParentID)
		if !ok {
			log.Warnf("Unknown parent category %q in pagination payload", p.ParentID)
			return h.showCategories(ctx, senderID, 0)
		}
		return h.showSubcategories(ctx, senderID, parent, p.Page)

	case payload.KindSelectCategory:
		return h.selectCategory(ctx, senderID, snapshot, p.ID)

	case payload.KindSelectSubcategory:
		return h.selectSubcategory(ctx, senderID, snapshot, p.ID)

	case payload.KindViewProducts:
		category, ok := snapshot.FindCategory(p.ID)
		if !ok {
			return h.send(ctx, senderID, message.NewText(message.TextCategoryMissing))
		}
		return h.send(ctx, senderID, message.NewText(fmt.Sprintf(message.TextViewProductsStub, category.Name)))

	case payload.KindHelp:
		return h.send(ctx, senderID, message.NewText(message.TextHelp))

	case payload.KindAffirm:
		return h.send(ctx, senderID, message.NewText(message.TextThanks))

	case payload.KindDecline:
		return h.send(ctx, senderID, message.NewText(message.TextTryAnotherImage))

	default:
		// Unknown payloads fall back to the category menu.
		log.Warnf("Unrecognized payload %q from %s", pb.Payload, senderID)
		return h.showCategories(ctx, senderID, 0)
	}
}

func (h *Handler) showCategories(ctx context.Context, senderID string, page int) error {
	snapshot := h.catalog.Snapshot()
	if snapshot.Empty() {
		log.Error("No categories available")
		return h.send(ctx, senderID, message.NewText(message.TextNoCategories))
	}

	items := menu.CategoryItems(snapshot.Categories)
	return h.send(ctx, senderID, menu.CategoryButtons(items, page, h.pageSize))
}

func (h *Handler) showSubcategories(ctx context.Context, senderID string, parent domain.Category, page int) error {
	items := menu.SubcategoryItems(parent.SubCategories)
	return h.send(ctx, senderID, menu.SubcategoryButtons(items, page, h.pageSize, parent.ID))
}

func (h *Handler) selectCategory(ctx context.Context, senderID string, snapshot domain.Catalog, id string) error {
	category, ok := snapshot.FindCategory(id)
	if !ok {
		return h.send(ctx, senderID, message.NewText(message.TextCategoryMissing))
	}

	if len(category.SubCategories) > 0 {
		return h.showSubcategories(ctx, senderID, category, 0)
	}

	// Leaf category: show its products directly.
	return h.showProducts(ctx, senderID, domain.FieldMainCategory, category.ID, message.TextNoProductsInCat)
}

func (h *Handler) selectSubcategory(ctx context.Context, senderID string, snapshot domain.Catalog, id string) error {
	_, _, ok := snapshot.FindSubcategory(id)
	if !ok {
		log.Errorf("Parent category not found for subcategory %q", id)
		return h.send(ctx, senderID, message.NewText(message.TextNoParentCategory))
	}

	return h.showProducts(ctx, senderID, domain.FieldSubCategory, id, message.TextNoProductsInSub)
}

func (h *Handler) showProducts(ctx context.Context, senderID, linkField, id, emptyText string) error {
	products, err := h.products.GetAllRecords(ctx, store.TableProducts)
	if err != nil {
		log.Errorf("❌ Failed to fetch products: %v", err)
		return h.send(ctx, senderID, message.NewText(message.TextProductsFailed))
	}

	elements := make([]message.Element, 0)
	for _, product := range products {
		if !product.ListContains(linkField, id) {
			continue
		}
		elements = append(elements, carouselElement(product))
	}

	if len(elements) == 0 {
		return h.send(ctx, senderID, message.NewText(emptyText))
	}

	return h.send(ctx, senderID, message.NewCarousel(elements))
}

func carouselElement(product domain.Record) message.Element {
	price := product.PricePerMeter()
	if price == "" {
		price = message.PriceUnknown
	}

	imageURL := product.FirstImageURL()
	if imageURL == "" {
		imageURL = message.DefaultProductImage
	}

	return message.Element{
		Title:    product.Name(),
		Subtitle: fmt.Sprintf(message.SubtitlePricePerM, price),
		ImageURL: imageURL,
	}
}

func (h *Handler) send(ctx context.Context, senderID string, msg message.Message) error {
	if err := h.sender.Send(ctx, senderID, msg); err != nil {
		return fmt.Errorf("failed to send reply to %s: %w", senderID, err)
	}
	return nil
}
