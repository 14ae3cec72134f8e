package domain

// Event is one inbound messaging event, already stripped of the webhook
// envelope. Exactly one of Message or Postback is set for events we handle.
type Event struct {
	SenderID string
	Message  *MessageEvent
	Postback *PostbackEvent
}

// MessageEvent is a plain text message, optionally carrying the payload of a
// quick reply the user tapped.
type MessageEvent struct {
	Text              string
	QuickReplyPayload string
}

// PostbackEvent carries the opaque payload attached to the button the user
// pressed. The platform returns exactly the string we sent.
type PostbackEvent struct {
	Payload string
}
