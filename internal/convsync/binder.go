package convsync

import (
	"context"

	"github.com/mbeoliero/kit/log"
)

// bind subscribes the event channel to every conversation currently in
// the record set. Runs after each snapshot replace; joins for ids the
// channel already holds are idempotent on the channel side, so a
// re-bind never needs to diff against previous joins. Caller holds
// s.mu.
func (s *Syncer) bind(ctx context.Context) {
	if s.channel == nil {
		return
	}

	for _, id := range s.store.Ids() {
		if err := s.channel.Join(id); err != nil {
			// One failed join must not starve the rest of the list.
			log.CtxWarn(ctx, "join conversation failed: conversation_id=%s, error=%v", id, err)
		}
	}
}
