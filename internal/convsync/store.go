package convsync

import (
	"sync"

	"github.com/mbeoliero/kit/log"

	"github.com/alzin/comy-chatsync/internal/entity"
)

// Store is the ordered conversation record set. Order follows the
// snapshot; lookups go through the id index. Id uniqueness holds at
// all times: a Replace payload carrying a duplicate id keeps the
// first occurrence and drops the rest.
type Store struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*entity.ConversationRecord
}

// NewStore creates an empty record set
func NewStore() *Store {
	return &Store{
		records: make(map[string]*entity.ConversationRecord),
	}
}

// Replace swaps the whole record set for a new one
func (s *Store) Replace(records []*entity.ConversationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]string, 0, len(records))
	s.records = make(map[string]*entity.ConversationRecord, len(records))

	for _, rec := range records {
		if _, exists := s.records[rec.Id]; exists {
			log.Warn("duplicate conversation id in snapshot dropped: conversation_id=%s", rec.Id)
			continue
		}
		s.order = append(s.order, rec.Id)
		s.records[rec.Id] = rec
	}
}

// Get returns the record for id
func (s *Store) Get(id string) (*entity.ConversationRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	return rec, ok
}

// List returns the records in snapshot order. The slice is a copy;
// the records are the live ones.
func (s *Store) List() []*entity.ConversationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*entity.ConversationRecord, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.records[id])
	}
	return result
}

// Ids returns the conversation ids in snapshot order
func (s *Store) Ids() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.order))
	copy(ids, s.order)
	return ids
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Clear empties the record set
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.records = make(map[string]*entity.ConversationRecord)
}
