package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"goose-quotes/internal/domains/goose/model"
	"goose-quotes/internal/domains/goose/service"
)

// Event channel message types
const (
	MessageGetGeese    = "GET_GEESE"
	MessageCreateGoose = "CREATE_GOOSE"

	ReplyGeese    = "GEESE"
	ReplyNewGoose = "NEW_GOOSE"
	ReplyError    = "ERROR"
)

const (
	messageTimeout = 60 * time.Second
	writeTimeout   = 10 * time.Second
)

// Message is an inbound event channel frame
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Reply is an outbound event channel frame
type Reply struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// EventHandler serves the /ws event channel.
// Replies only ever go back to the connection that sent the message.
type EventHandler struct {
	service  service.ServiceInterface
	upgrader websocket.Upgrader
}

// NewEventHandler creates the handler. Browsers may connect from the
// service's own origin or one of allowedOrigins ("*" allows any).
func NewEventHandler(svc service.ServiceInterface, allowedOrigins []string) *EventHandler {
	return &EventHandler{
		service: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.ToLower(strings.TrimRight(origin, "/"))] = true
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		// Non-browser clients send no Origin
		if origin == "" {
			return true
		}
		if allowed["*"] || allowed[strings.ToLower(origin)] {
			return true
		}

		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		if strings.EqualFold(u.Host, r.Host) {
			return true
		}

		log.Warn().Str("origin", origin).Msg("websocket origin rejected")
		return false
	}
}

// Serve upgrades the request and runs the read loop of one connection.
// Each message is handled to completion and answered before the next is read.
func (h *EventHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	remote := conn.RemoteAddr().String()
	log.Debug().Str("remote", remote).Msg("websocket connection opened")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				log.Warn().Err(err).Str("remote", remote).Msg("websocket read failed")
			}
			log.Debug().Str("remote", remote).Msg("Connection closed")
			return
		}

		reply := h.Dispatch(ctx, data)
		if reply == nil {
			continue
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn().Err(err).Str("remote", remote).Msg("websocket write failed")
			return
		}
	}
}

// Dispatch handles one raw frame and returns the reply to send, or nil when
// the message type is unknown.
func (h *EventHandler) Dispatch(ctx context.Context, data []byte) *Reply {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return errorReply("Invalid message")
	}

	ctx, cancel := context.WithTimeout(ctx, messageTimeout)
	defer cancel()

	switch msg.Type {
	case MessageGetGeese:
		geese, err := h.service.ListGeese(ctx, "")
		if err != nil {
			return errorReply(model.ToMessage(err))
		}
		return &Reply{Type: ReplyGeese, Payload: nonNil(geese)}

	case MessageCreateGoose:
		var req model.CreateGooseRequest
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &req); err != nil {
				return errorReply("Invalid payload")
			}
		}

		created, err := h.service.CreateGoose(ctx, &req)
		if err != nil {
			return errorReply(model.ToMessage(err))
		}
		return &Reply{Type: ReplyNewGoose, Payload: created.ToCreatedResponse()}

	default:
		log.Debug().Str("type", msg.Type).Msg("ignoring unknown message type")
		return nil
	}
}

func errorReply(message string) *Reply {
	return &Reply{
		Type:    ReplyError,
		Payload: gin.H{"message": message},
	}
}
