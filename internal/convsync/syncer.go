package convsync

import (
	"sync"
	"sync/atomic"

	"github.com/alzin/comy-chatsync/internal/channel"
	"github.com/alzin/comy-chatsync/internal/config"
	"github.com/alzin/comy-chatsync/internal/entity"
	"github.com/alzin/comy-chatsync/internal/provider"
)

// BotMatcher decides whether a snapshot entry is the distinguished bot
// conversation. The default matches on the configured bot name.
type BotMatcher func(raw *entity.RawConversation) bool

// Syncer maintains the viewer's conversation list: it merges one-shot
// snapshot loads with the live event stream, derives per-conversation
// unread state, and tracks which conversation the viewer has open.
//
// All state transitions (snapshot replace, event merge, selection)
// serialize on mu, so an event arriving while a snapshot load is
// completing observes either the old set or the new one, never a
// half-replaced set.
type Syncer struct {
	cfg      *config.Config
	provider provider.Provider
	channel  channel.EventChannel
	botMatch BotMatcher

	mu         sync.Mutex
	store      *Store
	viewerId   string
	selectedId string
	botConvId  string
	botId      string
	generation uint64

	dropped atomic.Int64
}

// SyncerOption is a function to configure the syncer
type SyncerOption func(*Syncer)

// WithBotMatcher replaces the bot-conversation predicate
func WithBotMatcher(m BotMatcher) SyncerOption {
	return func(s *Syncer) {
		s.botMatch = m
	}
}

// New creates a Syncer and subscribes it to the event channel. A nil
// channel is allowed; the syncer then only serves snapshot loads.
func New(cfg *config.Config, p provider.Provider, ch channel.EventChannel, opts ...SyncerOption) *Syncer {
	s := &Syncer{
		cfg:      cfg,
		provider: p,
		channel:  ch,
		store:    NewStore(),
	}
	s.botMatch = func(raw *entity.RawConversation) bool {
		return raw.Name == cfg.Bot.Name
	}

	for _, opt := range opts {
		opt(s)
	}

	if ch != nil {
		ch.Subscribe(s.Apply)
	}

	return s
}

// List returns the current ordered conversation records
func (s *Syncer) List() []*entity.ConversationRecord {
	return s.store.List()
}

// Len returns the number of known conversations
func (s *Syncer) Len() int {
	return s.store.Len()
}

// ViewerId returns the viewer the current record set was loaded for
func (s *Syncer) ViewerId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewerId
}

// BotId returns the known bot identifier resolved from the last
// snapshot, or empty when the snapshot reported no bot conversation
func (s *Syncer) BotId() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.botId
}

// DroppedEvents returns how many events referenced unknown
// conversations and were discarded
func (s *Syncer) DroppedEvents() int64 {
	return s.dropped.Load()
}

// Reset tears the session state down: record set, selection, and bot
// identity are cleared, and any in-flight snapshot load is invalidated
// so its result gets discarded at completion.
func (s *Syncer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.viewerId = ""
	s.selectedId = ""
	s.botConvId = ""
	s.botId = ""
	s.store.Clear()
}
