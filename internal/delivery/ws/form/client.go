package ws_form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/humanbelnik/kinoswap/prefform/internal/model"
	usecase_form "github.com/humanbelnik/kinoswap/prefform/internal/usecase/form"
)

const (
	EventState = "state"
	EventError = "error"

	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
	sendBuffer     = 32
)

var ErrUnknownMessage = errors.New("unknown message type")

type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Message is an action sent by the browser.
type Message struct {
	Type   string   `json:"type"`
	Query  string   `json:"query,omitempty"`
	Field  string   `json:"field,omitempty"`
	Values []string `json:"values,omitempty"`
	Movie  string   `json:"movie,omitempty"`
	Value  *float64 `json:"value,omitempty"`
}

func (m Message) Action() (usecase_form.Action, error) {
	switch m.Type {
	case "search":
		return usecase_form.Search{Query: m.Query}, nil
	case "select":
		return usecase_form.Select{Field: model.Field(m.Field), Values: m.Values}, nil
	case "rate":
		a := usecase_form.Rate{Movie: m.Movie}
		if m.Value != nil {
			r := model.Rating(*m.Value)
			a.Value = &r
		}
		return a, nil
	case "submit":
		return usecase_form.Submit{}, nil
	}
	return nil, ErrUnknownMessage
}

type Client struct {
	hub         *Hub
	conn        *websocket.Conn
	session     *usecase_form.Session
	send        chan Event
	idleTimeout time.Duration
	logger      *slog.Logger

	mu     sync.Mutex
	closed bool
}

func newClient(hub *Hub, conn *websocket.Conn, idleTimeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan Event, sendBuffer),
		idleTimeout: idleTimeout,
		logger:      logger,
	}
}

// publish forwards session events. It never blocks: a client that
// cannot keep up is disconnected.
func (c *Client) publish(e usecase_form.Event) {
	switch e.Type {
	case usecase_form.EventError:
		c.enqueue(Event{Type: EventError, Payload: ErrorPayload{Message: e.Message}})
	default:
		c.enqueue(Event{Type: EventState, Payload: e.State})
	}
}

func (c *Client) enqueue(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	select {
	case c.send <- e:
	default:
		c.logger.Warn("client is too slow, dropping connection")
		c.closed = true
		close(c.send)
		_ = c.conn.Close()
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.session.Close()
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	for {
		if c.idleTimeout > 0 {
			_ = c.conn.SetReadDeadline(time.Now().Add(c.idleTimeout))
		}

		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket closed", slog.String("error", err.Error()))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.enqueue(Event{Type: EventError, Payload: ErrorPayload{Message: "malformed message"}})
			continue
		}

		action, err := msg.Action()
		if err != nil {
			c.enqueue(Event{Type: EventError, Payload: ErrorPayload{Message: err.Error()}})
			continue
		}

		if err := c.session.Dispatch(ctx, action); err != nil {
			if usecase_form.Quiet(err) {
				continue
			}
			c.logger.Debug("action rejected",
				slog.String("type", msg.Type),
				slog.String("error", err.Error()),
			)
			c.enqueue(Event{Type: EventError, Payload: ErrorPayload{Message: usecase_form.Message(err)}})
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for event := range c.send {
		data, err := json.Marshal(event)
		if err != nil {
			c.logger.Error("failed to encode event", slog.String("error", err.Error()))
			continue
		}
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
