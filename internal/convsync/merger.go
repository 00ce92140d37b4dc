package convsync

import (
	"context"

	"github.com/mbeoliero/kit/log"

	"github.com/alzin/comy-chatsync/internal/entity"
)

// Apply folds one inbound message event into the record set. Events
// for unknown conversations are dropped and counted; new-conversation
// discovery belongs to the next snapshot load. Applying the same event
// twice leaves the same final state.
func (s *Syncer) Apply(ctx context.Context, ev *entity.MessageEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.Get(ev.ConversationId)
	if !ok {
		s.dropped.Add(1)
		log.CtxDebug(ctx, "event for unknown conversation dropped: conversation_id=%s", ev.ConversationId)
		return
	}

	// Arrival order governs read state; the preview never regresses to
	// an older timestamp.
	if rec.LastMessage == nil || ev.CreatedAt >= rec.LastMessage.OccurredAt {
		rec.LastMessage = &entity.LastMessage{
			Content:    ev.Content,
			OccurredAt: ev.CreatedAt,
		}
	}
	if ev.CreatedAt > rec.LastActivity {
		rec.LastActivity = ev.CreatedAt
	}

	if ev.ConversationId == s.selectedId {
		rec.IsUnread = false
	} else {
		rec.IsUnread = !ev.ReadByUser(s.viewerId)
	}
}
