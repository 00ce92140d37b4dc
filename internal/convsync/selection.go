package convsync

import (
	"github.com/alzin/comy-chatsync/internal/entity"
	"github.com/alzin/comy-chatsync/pkg/constant"
	"github.com/alzin/comy-chatsync/pkg/errcode"
)

// Select marks a conversation as the one the viewer has open. The
// record's unread flag clears immediately and stays clear for every
// event merged while the selection holds. Returns an enriched copy for
// the conversation pane: bot conversations carry the configured bot
// image, others fall back to the placeholder when no counterpart image
// resolved. There is one selection at a time and no history.
func (s *Syncer) Select(id string) (*entity.ConversationView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.store.Get(id)
	if !ok {
		return nil, errcode.ErrConvNotFound
	}

	s.selectedId = id
	rec.IsUnread = false

	view := &entity.ConversationView{
		ConversationRecord: *rec.Clone(),
	}

	if rec.IsBot {
		view.ProfileImage = s.cfg.Bot.Image
		// Replies to the bot conversation are not addressed to a
		// counterpart, so CounterpartId stays empty.
		return view, nil
	}

	if view.ProfileImage == "" {
		view.ProfileImage = constant.PlaceholderProfileImage
	}
	if p := rec.Counterpart(s.viewerId, s.botId); p != nil {
		view.CounterpartId = p.Id
	}

	return view, nil
}

// Deselect clears the current selection, typically when the viewer
// closes the conversation pane
func (s *Syncer) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedId = ""
}

// SelectedId returns the currently open conversation id, or empty
func (s *Syncer) SelectedId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedId
}
