package channel

import (
	"context"
	"errors"

	"github.com/alzin/comy-chatsync/internal/entity"
)

// Handler consumes one inbound message event
type Handler func(ctx context.Context, ev *entity.MessageEvent)

// EventChannel is the live transport capability consumed by the
// synchronizer. Join subscribes the connection to one conversation and
// is idempotent on the channel side. Connection-level reliability is
// the channel's own concern; the synchronizer only stops receiving
// events when the channel fails.
type EventChannel interface {
	Subscribe(h Handler)
	Join(conversationId string) error
	Run(ctx context.Context) error
	Close() error
}

// Channel errors
var (
	ErrConnClosed       = errors.New("connection closed")
	ErrWriteChannelFull = errors.New("write channel full")
	ErrInvalidFrame     = errors.New("invalid frame")
	ErrNotConnected     = errors.New("not connected")
)
