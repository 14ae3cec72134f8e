package bot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fabricshop/bot/internal/catalog"
	"fabricshop/bot/internal/domain"
	"fabricshop/bot/internal/message"
	"fabricshop/bot/internal/store"
)

type capturingSender struct {
	sent []message.Message
	err  error
}

func (s *capturingSender) Send(ctx context.Context, recipientID string, msg message.Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func (s *capturingSender) last(t *testing.T) message.Message {
	t.Helper()
	require.NotEmpty(t, s.sent)
	return s.sent[len(s.sent)-1]
}

type stubProducts struct {
	products []domain.Record
	err      error
}

func (s *stubProducts) GetAllRecords(ctx context.Context, table string) ([]domain.Record, error) {
	return s.products, s.err
}

func (s *stubProducts) GetRecord(ctx context.Context, id, table string) (domain.Record, error) {
	return domain.Record{}, store.ErrRecordNotFound
}

func categoryRecord(id, name string, parents ...string) domain.Record {
	fields := map[string]any{domain.FieldName: name}
	if len(parents) > 0 {
		list := make([]any, 0, len(parents))
		for _, p := range parents {
			list = append(list, p)
		}
		fields[domain.FieldParentCategory] = list
	}
	return domain.Record{ID: id, Fields: fields}
}

func productRecord(name string, fields map[string]any) domain.Record {
	all := map[string]any{domain.FieldName: name}
	for k, v := range fields {
		all[k] = v
	}
	return domain.Record{ID: "prod_" + name, Fields: all}
}

// fixture: cat1 (Cotton) has two subcategories, cat2 (Buttons) is a leaf,
// cat3..cat5 pad the list past one page.
func fixtureCatalog() *catalog.Store {
	s := catalog.NewStore()
	s.Swap(catalog.Build([]domain.Record{
		categoryRecord("cat1", "Cotton"),
		categoryRecord("cat2", "Buttons"),
		categoryRecord("cat3", "Silk"),
		categoryRecord("cat4", "Linen"),
		categoryRecord("cat5", "Wool"),
		categoryRecord("sub1", "Printed Cotton", "cat1"),
		categoryRecord("sub2", "Dyed Cotton", "cat1"),
	}))
	return s
}

func newTestHandler(products *stubProducts, sender *capturingSender) *Handler {
	return NewHandler(fixtureCatalog(), products, sender, 2)
}

func postback(payload string) domain.Event {
	return domain.Event{
		SenderID: "user1",
		Postback: &domain.PostbackEvent{Payload: payload},
	}
}

func buttonsOf(t *testing.T, msg message.Message) []message.Button {
	t.Helper()
	require.NotNil(t, msg.Attachment)
	require.Equal(t, "button", msg.Attachment.Payload.TemplateType)
	return msg.Attachment.Payload.Buttons
}

func TestPlainMessageGetsWelcome(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	ev := domain.Event{
		SenderID: "user1",
		Message:  &domain.MessageEvent{Text: "hi"},
	}
	require.NoError(t, h.HandleEvent(context.Background(), ev))

	msg := sender.last(t)
	assert.Equal(t, message.TextWelcome, msg.Text)
	require.Len(t, msg.QuickReplies, 2)
	assert.Equal(t, "browse_categories", msg.QuickReplies[0].Payload)
	assert.Equal(t, "help", msg.QuickReplies[1].Payload)
}

func TestBrowseQuickReplyShowsFirstPage(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	ev := domain.Event{
		SenderID: "user1",
		Message:  &domain.MessageEvent{Text: "تصفح الفئات", QuickReplyPayload: "browse_categories"},
	}
	require.NoError(t, h.HandleEvent(context.Background(), ev))

	buttons := buttonsOf(t, sender.last(t))
	require.Len(t, buttons, 3)
	assert.Equal(t, "category_cat1", buttons[0].Payload)
	assert.Equal(t, "more_categories_1", buttons[2].Payload)
}

func TestBrowseAndBackPostbacksResetToFirstPage(t *testing.T) {
	for _, payload := range []string{"browse_categories", "back_to_categories"} {
		t.Run(payload, func(t *testing.T) {
			sender := &capturingSender{}
			h := newTestHandler(&stubProducts{}, sender)

			require.NoError(t, h.HandleEvent(context.Background(), postback(payload)))

			buttons := buttonsOf(t, sender.last(t))
			assert.Equal(t, "category_cat1", buttons[0].Payload)
		})
	}
}

func TestMoreCategoriesPaginates(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("more_categories_2")))

	// Page 2 of 5 categories: one item plus the back button
	buttons := buttonsOf(t, sender.last(t))
	require.Len(t, buttons, 2)
	assert.Equal(t, "category_cat5", buttons[0].Payload)
	assert.Equal(t, "browse_categories", buttons[1].Payload)
}

func TestMoreCategoriesOutOfRange(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("more_categories_40")))

	// Back-only message, not an error
	buttons := buttonsOf(t, sender.last(t))
	require.Len(t, buttons, 1)
	assert.Equal(t, "browse_categories", buttons[0].Payload)
}

func TestMoreSubcategories(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("more_subcategories_cat1_0")))

	buttons := buttonsOf(t, sender.last(t))
	require.Len(t, buttons, 3)
	assert.Equal(t, "subcategory_sub1", buttons[0].Payload)
	assert.Equal(t, "subcategory_sub2", buttons[1].Payload)
	assert.Equal(t, "back_to_categories", buttons[2].Payload)
}

func TestMoreSubcategoriesUnknownParentFallsBack(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("more_subcategories_nope_1")))

	buttons := buttonsOf(t, sender.last(t))
	assert.Equal(t, "category_cat1", buttons[0].Payload)
}

func TestSelectCategoryWithSubcategories(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("category_cat1")))

	msg := sender.last(t)
	assert.Equal(t, message.TextChooseSub, msg.Attachment.Payload.Text)
	buttons := buttonsOf(t, msg)
	assert.Equal(t, "subcategory_sub1", buttons[0].Payload)
}

func TestSelectLeafCategoryShowsProducts(t *testing.T) {
	products := &stubProducts{products: []domain.Record{
		productRecord("Shell Button", map[string]any{
			domain.FieldMainCategory:  []any{"cat2"},
			domain.FieldPricePerMeter: 12.5,
		}),
		productRecord("Silk Scarf", map[string]any{
			domain.FieldMainCategory: []any{"cat3"},
		}),
	}}
	sender := &capturingSender{}
	h := newTestHandler(products, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("category_cat2")))

	msg := sender.last(t)
	require.NotNil(t, msg.Attachment)
	require.Equal(t, "generic", msg.Attachment.Payload.TemplateType)
	require.Len(t, msg.Attachment.Payload.Elements, 1)

	element := msg.Attachment.Payload.Elements[0]
	assert.Equal(t, "Shell Button", element.Title)
	assert.Equal(t, "Price per meter: 12.5", element.Subtitle)
	assert.Equal(t, message.DefaultProductImage, element.ImageURL)
}

func TestSelectLeafCategoryNoProducts(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("category_cat2")))

	assert.Equal(t, message.TextNoProductsInCat, sender.last(t).Text)
}

func TestSelectCategoryProductFetchFailure(t *testing.T) {
	products := &stubProducts{err: errors.New("airtable down")}
	sender := &capturingSender{}
	h := newTestHandler(products, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("category_cat2")))

	assert.Equal(t, message.TextProductsFailed, sender.last(t).Text)
}

func TestSelectUnknownCategory(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("category_nope")))

	assert.Equal(t, message.TextCategoryMissing, sender.last(t).Text)
}

func TestSelectSubcategoryShowsProducts(t *testing.T) {
	products := &stubProducts{products: []domain.Record{
		productRecord("Printed Roll", map[string]any{
			domain.FieldSubCategory: []any{"sub1"},
			domain.FieldImage:       []any{map[string]any{"url": "https://img.example/roll.jpg"}},
		}),
		productRecord("Other", map[string]any{
			domain.FieldSubCategory: []any{"sub2"},
		}),
	}}
	sender := &capturingSender{}
	h := newTestHandler(products, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("subcategory_sub1")))

	msg := sender.last(t)
	require.Len(t, msg.Attachment.Payload.Elements, 1)
	element := msg.Attachment.Payload.Elements[0]
	assert.Equal(t, "Printed Roll", element.Title)
	assert.Equal(t, "Price per meter: N/A", element.Subtitle)
	assert.Equal(t, "https://img.example/roll.jpg", element.ImageURL)
}

func TestSelectSubcategoryCarouselCap(t *testing.T) {
	products := &stubProducts{}
	for i := 0; i < 15; i++ {
		products.products = append(products.products, productRecord(
			fmt.Sprintf("Roll %d", i),
			map[string]any{domain.FieldSubCategory: []any{"sub1"}},
		))
	}
	sender := &capturingSender{}
	h := newTestHandler(products, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("subcategory_sub1")))

	assert.Len(t, sender.last(t).Attachment.Payload.Elements, message.MaxCarouselItems)
}

func TestSelectOrphanSubcategory(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("subcategory_nope")))

	assert.Equal(t, message.TextNoParentCategory, sender.last(t).Text)
}

func TestSelectSubcategoryNoProducts(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("subcategory_sub2")))

	assert.Equal(t, message.TextNoProductsInSub, sender.last(t).Text)
}

func TestViewProductsStub(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("view_products_cat1")))
	assert.Contains(t, sender.last(t).Text, "Viewing products for: Cotton")

	require.NoError(t, h.HandleEvent(context.Background(), postback("view_products_nope")))
	assert.Equal(t, message.TextCategoryMissing, sender.last(t).Text)
}

func TestFixedReplies(t *testing.T) {
	cases := map[string]string{
		"help": message.TextHelp,
		"yes":  message.TextThanks,
		"no":   message.TextTryAnotherImage,
	}

	for payload, want := range cases {
		t.Run(payload, func(t *testing.T) {
			sender := &capturingSender{}
			h := newTestHandler(&stubProducts{}, sender)

			require.NoError(t, h.HandleEvent(context.Background(), postback(payload)))
			assert.Equal(t, want, sender.last(t).Text)
		})
	}
}

func TestUnknownPayloadShowsCategoryMenu(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), postback("totally_unknown")))

	buttons := buttonsOf(t, sender.last(t))
	assert.Equal(t, "category_cat1", buttons[0].Payload)
}

func TestEmptyCatalogDegrades(t *testing.T) {
	sender := &capturingSender{}
	h := NewHandler(catalog.NewStore(), &stubProducts{}, sender, 2)

	for _, payload := range []string{"browse_categories", "more_categories_3", "garbage"} {
		require.NoError(t, h.HandleEvent(context.Background(), postback(payload)))
		assert.Equal(t, message.TextNoCategories, sender.last(t).Text)
	}
}

func TestDeliveryFailurePropagates(t *testing.T) {
	sender := &capturingSender{err: errors.New("send API 500")}
	h := newTestHandler(&stubProducts{}, sender)

	err := h.HandleEvent(context.Background(), postback("help"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send API 500")
}

func TestEventWithNeitherMessageNorPostback(t *testing.T) {
	sender := &capturingSender{}
	h := newTestHandler(&stubProducts{}, sender)

	require.NoError(t, h.HandleEvent(context.Background(), domain.Event{SenderID: "user1"}))
	assert.Empty(t, sender.sent)
}
