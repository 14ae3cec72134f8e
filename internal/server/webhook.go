package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"fabricshop/bot/internal/domain"
)

// EventHandler resolves one inbound messaging event to its reply.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev domain.Event) error
}

// Server exposes the Messenger webhook endpoints.
type Server struct {
	verifyToken string
	handler     EventHandler
}

func NewServer(verifyToken string, handler EventHandler) *Server {
	return &Server{
		verifyToken: verifyToken,
		handler:     handler,
	}
}

// Router builds the chi router with the webhook routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/webhook", s.verify)
	r.Post("/webhook", s.receive)

	return r
}

// verify answers the Messenger subscription handshake: echo hub.challenge
// when the verify token matches, 403 otherwise.
func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken {
		log.Info("Webhook verified successfully")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(challenge))
		return
	}

	w.WriteHeader(http.StatusForbidden)
}

// webhookBody is the Messenger webhook envelope.
type webhookBody struct {
	Object string `json:"object"`
	Entry  []struct {
		Messaging []messagingEvent `json:"messaging"`
	} `json:"entry"`
}

type messagingEvent struct {
	Sender struct {
		ID string `json:"id"`
	} `json:"sender"`
	Message *struct {
		Text       string `json:"text"`
		QuickReply *struct {
			Payload string `json:"payload"`
		} `json:"quick_reply"`
	} `json:"message"`
	Postback *struct {
		Payload string `json:"payload"`
	} `json:"postback"`
}

// receive accepts a webhook delivery, handles each entry's messaging event
// and always acknowledges accepted page events with EVENT_RECEIVED. Handler
// errors are delivery failures already apologised for downstream; they are
// logged here, never surfaced to the platform.
func (s *Server) receive(w http.ResponseWriter, r *http.Request) {
	var body webhookBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Errorf("❌ Failed to decode webhook body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if body.Object != "page" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	for _, entry := range body.Entry {
		if len(entry.Messaging) == 0 {
			continue
		}

		ev, ok := toEvent(entry.Messaging[0])
		if !ok {
			log.Warn("Unknown event type received")
			continue
		}

		if err := s.handler.HandleEvent(r.Context(), ev); err != nil {
			log.Errorf("❌ Failed to handle event from %s: %v", ev.SenderID, err)
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("EVENT_RECEIVED"))
}

func toEvent(raw messagingEvent) (domain.Event, bool) {
	ev := domain.Event{SenderID: raw.Sender.ID}

	switch {
	case raw.Message != nil:
		msg := &domain.MessageEvent{Text: raw.Message.Text}
		if raw.Message.QuickReply != nil {
			msg.QuickReplyPayload = raw.Message.QuickReply.Payload
		}
		ev.Message = msg
	case raw.Postback != nil:
		ev.Postback = &domain.PostbackEvent{Payload: raw.Postback.Payload}
	default:
		return domain.Event{}, false
	}

	return ev, true
}
