package message

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	msg := NewText("hello")
	assert.Equal(t, "hello", msg.Text)
	assert.Nil(t, msg.Attachment)
	assert.Empty(t, msg.QuickReplies)
}

func TestNewQuickReply(t *testing.T) {
	msg := NewQuickReply("pick one",
		TextQuickReply("Browse", "browse_categories"),
		TextQuickReply("Help", "help"),
	)

	require.Len(t, msg.QuickReplies, 2)
	assert.Equal(t, "text", msg.QuickReplies[0].ContentType)
	assert.Equal(t, "browse_categories", msg.QuickReplies[0].Payload)
}

func TestNewButtonTemplateCapsButtons(t *testing.T) {
	buttons := []Button{
		PostbackButton("a", "pa"),
		PostbackButton("b", "pb"),
		PostbackButton("c", "pc"),
		PostbackButton("d", "pd"),
	}

	msg := NewButtonTemplate("choose", buttons)

	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "template", msg.Attachment.Type)
	assert.Equal(t, "button", msg.Attachment.Payload.TemplateType)
	assert.Len(t, msg.Attachment.Payload.Buttons, MaxButtons)
}

func TestNewCarouselCapsElements(t *testing.T) {
	elements := make([]Element, 12)
	for i := range elements {
		elements[i] = Element{Title: "product"}
	}

	msg := NewCarousel(elements)

	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "generic", msg.Attachment.Payload.TemplateType)
	assert.Len(t, msg.Attachment.Payload.Elements, MaxCarouselItems)
}

func TestWireShape(t *testing.T) {
	data, err := json.Marshal(NewButtonTemplate("choose", []Button{PostbackButton("a", "pa")}))
	require.NoError(t, err)

	want := `{"attachment":{"type":"template","payload":{"template_type":"button","text":"choose","buttons":[{"type":"postback","title":"a","payload":"pa"}]}}}`
	assert.JSONEq(t, want, string(data))

	data, err = json.Marshal(NewText("hi"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi"}`, string(data))
}
