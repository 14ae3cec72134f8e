package message

// Platform limits for a single outbound message.
const (
	MaxButtons       = 3
	MaxCarouselItems = 10
)

// Message is one outbound Messenger message in Send API wire shape. Exactly
// one of Text or Attachment is set; QuickReplies only accompany Text.
type Message struct {
	Text         string       `json:"text,omitempty"`
	QuickReplies []QuickReply `json:"quick_replies,omitempty"`
	Attachment   *Attachment  `json:"attachment,omitempty"`
}

// QuickReply is one tappable suggestion attached to a text message.
type QuickReply struct {
	ContentType string `json:"content_type"`
	Title       string `json:"title"`
	Payload     string `json:"payload"`
}

// Attachment wraps a structured template.
type Attachment struct {
	Type    string   `json:"type"`
	Payload Template `json:"payload"`
}

// Template is the payload of a template attachment: a button template when
// Buttons is set, a generic (carousel) template when Elements is set.
type Template struct {
	TemplateType string    `json:"template_type"`
	Text         string    `json:"text,omitempty"`
	Buttons      []Button  `json:"buttons,omitempty"`
	Elements     []Element `json:"elements,omitempty"`
}

// Button is one postback button.
type Button struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// Element is one card of a generic-template carousel.
type Element struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	ImageURL string   `json:"image_url,omitempty"`
	Buttons  []Button `json:"buttons,omitempty"`
}

// NewText creates a plain text message.
func NewText(text string) Message {
	return Message{Text: text}
}

// NewQuickReply creates a text message with tappable quick replies.
func NewQuickReply(text string, replies ...QuickReply) Message {
	return Message{Text: text, QuickReplies: replies}
}

// TextQuickReply builds one text-type quick reply option.
func TextQuickReply(title, payload string) QuickReply {
	return QuickReply{ContentType: "text", Title: title, Payload: payload}
}

// PostbackButton builds one postback button.
func PostbackButton(title, payload string) Button {
	return Button{Type: "postback", Title: title, Payload: payload}
}

// NewButtonTemplate creates a button-template message. Buttons beyond the
// platform limit are dropped.
func NewButtonTemplate(text string, buttons []Button) Message {
	if len(buttons) > MaxButtons {
		buttons = buttons[:MaxButtons]
	}
	return Message{
		Attachment: &Attachment{
			Type: "template",
			Payload: Template{
				TemplateType: "button",
				Text:         text,
				Buttons:      buttons,
			},
		},
	}
}

// NewCarousel creates a generic-template carousel. Elements beyond the
// platform limit are dropped.
func NewCarousel(elements []Element) Message {
	if len(elements) > MaxCarouselItems {
		elements = elements[:MaxCarouselItems]
	}
	return Message{
		Attachment: &Attachment{
			Type: "template",
			Payload: Template{
				TemplateType: "generic",
				Elements:     elements,
			},
		},
	}
}
