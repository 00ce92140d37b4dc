package provider

import (
	"context"

	"github.com/alzin/comy-chatsync/internal/entity"
)

// Provider is the snapshot capability consumed by the synchronizer: a
// one-shot, complete listing of the viewer's conversations.
type Provider interface {
	FetchConversations(ctx context.Context, viewerId string) ([]*entity.RawConversation, error)
}
