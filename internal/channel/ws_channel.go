package channel

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/mbeoliero/kit/log"

	"github.com/alzin/comy-chatsync/internal/config"
	"github.com/alzin/comy-chatsync/internal/entity"
	"github.com/alzin/comy-chatsync/pkg/constant"
	"github.com/alzin/comy-chatsync/pkg/idgen"
)

// WsChannel is the websocket implementation of EventChannel. It dials
// the chat gateway and dispatches inbound message frames to all
// subscribed handlers until the connection ends.
type WsChannel struct {
	cfg    *config.WebSocketConfig
	conn   *wsConn
	connId string

	mu       sync.RWMutex
	handlers []Handler
	closed   atomic.Bool
}

// Dial connects to the gateway and returns a connected channel. The
// token authenticates the connection; auth failures surface as a dial
// error.
func Dial(ctx context.Context, cfg *config.WebSocketConfig, token string) (*WsChannel, error) {
	connId := uuid.New().String()

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid websocket url: %w", err)
	}
	query := u.Query()
	query.Set("token", token)
	query.Set("conn_id", connId)
	u.RawQuery = query.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial gateway: %w", err)
	}

	return &WsChannel{
		cfg:    cfg,
		conn:   newWsConn(conn, cfg),
		connId: connId,
	}, nil
}

// Subscribe registers a handler for inbound message events. Both wire
// aliases of the message event reach every handler.
func (c *WsChannel) Subscribe(h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, h)
}

// Join subscribes the connection to one conversation. The gateway
// treats repeated joins for the same id as a no-op, so callers may
// join redundantly.
func (c *WsChannel) Join(conversationId string) error {
	if c.closed.Load() {
		return ErrConnClosed
	}

	data, err := Encode(JoinData{ConversationId: conversationId})
	if err != nil {
		return err
	}

	frame, err := Encode(Frame{
		Event:       constant.EventJoinChat,
		OperationId: idgen.NextOperationId(),
		Data:        data,
	})
	if err != nil {
		return err
	}

	return c.conn.WriteFrame(frame)
}

// Run reads frames until the connection ends or ctx is cancelled.
// Returns nil on a clean close.
func (c *WsChannel) Run(ctx context.Context) error {
	defer c.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frame, err := c.conn.ReadFrame()
		if err != nil {
			if c.closed.Load() {
				return nil
			}
			log.CtxWarn(ctx, "channel read error: conn_id=%s, error=%v", c.connId, err)
			return err
		}

		if err := c.dispatch(ctx, frame); err != nil {
			// A malformed frame is logged and skipped; it must not end
			// the stream for well-formed events behind it.
			log.CtxWarn(ctx, "channel frame dropped: conn_id=%s, error=%v", c.connId, err)
		}
	}
}

// dispatch decodes a frame and fans a message event out to handlers
func (c *WsChannel) dispatch(ctx context.Context, raw []byte) error {
	var frame Frame
	if err := Decode(raw, &frame); err != nil {
		return ErrInvalidFrame
	}

	if !IsMessageEvent(frame.Event) {
		log.CtxDebug(ctx, "ignoring frame: event=%s, conn_id=%s", frame.Event, c.connId)
		return nil
	}

	var ev entity.MessageEvent
	if err := Decode(frame.Data, &ev); err != nil {
		return ErrInvalidFrame
	}
	if ev.ConversationId == "" {
		return ErrInvalidFrame
	}

	c.mu.RLock()
	handlers := make([]Handler, len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.RUnlock()

	for _, h := range handlers {
		h(ctx, &ev)
	}
	return nil
}

// Close closes the channel connection
func (c *WsChannel) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	return c.conn.Close()
}

// ConnId returns the connection id assigned at dial time
func (c *WsChannel) ConnId() string {
	return c.connId
}
