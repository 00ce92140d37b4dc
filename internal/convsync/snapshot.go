package convsync

import (
	"context"

	"github.com/mbeoliero/kit/log"

	"github.com/alzin/comy-chatsync/internal/entity"
	"github.com/alzin/comy-chatsync/pkg/errcode"
)

// Load fetches the viewer's complete conversation listing and replaces
// the record set with it. Runs once per viewer-identity change; a load
// that is no longer current when the provider responds discards its
// result (a newer Load or Reset bumped the generation). On fetch
// failure the prior list stays untouched.
func (s *Syncer) Load(ctx context.Context, viewerId string) error {
	if viewerId == "" {
		return errcode.ErrNoViewer
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.viewerId = viewerId
	s.mu.Unlock()

	raws, err := s.provider.FetchConversations(ctx, viewerId)
	if err != nil {
		log.CtxError(ctx, "load conversations failed: viewer_id=%s, error=%v", viewerId, err)
		return errcode.ErrFetchFailed.Wrap(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.viewerId != viewerId {
		log.CtxInfo(ctx, "discarding stale snapshot: viewer_id=%s", viewerId)
		return nil
	}

	s.botConvId, s.botId = resolveBot(raws, s.botMatch)

	records := make([]*entity.ConversationRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, s.deriveRecord(raw))
	}
	s.store.Replace(records)

	log.CtxInfo(ctx, "snapshot loaded: viewer_id=%s, conversations=%d, bot_id=%s",
		viewerId, len(records), s.botId)

	s.bind(ctx)
	return nil
}

// deriveRecord builds the canonical record for one snapshot entry.
// Caller holds s.mu.
func (s *Syncer) deriveRecord(raw *entity.RawConversation) *entity.ConversationRecord {
	rec := &entity.ConversationRecord{
		Id:           raw.Id,
		DisplayName:  raw.DisplayName(),
		Participants: append([]entity.Participant(nil), raw.Users...),
		ProfileImage: raw.CounterpartImage(s.viewerId),
		LastActivity: raw.UpdatedAt,
		IsBot:        s.botConvId != "" && raw.Id == s.botConvId,
	}

	if m := raw.LatestMessage; m != nil {
		rec.LastMessage = &entity.LastMessage{
			Content:    m.Content,
			OccurredAt: m.CreatedAt,
		}
		if m.CreatedAt != 0 {
			rec.LastActivity = m.CreatedAt
		}
		rec.IsUnread = raw.Id != s.selectedId && !m.ReadByUser(s.viewerId)
	}

	return rec
}

// resolveBot scans the snapshot for the distinguished bot conversation
// and returns its conversation id plus the id of its bot-role
// participant. At most one record becomes the bot conversation even
// when several entries match the predicate. A snapshot without a match
// yields empties, which is a valid session state, not an error.
func resolveBot(raws []*entity.RawConversation, match BotMatcher) (convId, userId string) {
	for _, raw := range raws {
		if !match(raw) {
			continue
		}
		if bot := raw.BotParticipant(); bot != nil {
			return raw.Id, bot.Id
		}
		return raw.Id, ""
	}
	return "", ""
}
