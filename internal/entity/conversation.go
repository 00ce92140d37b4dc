package entity

import "github.com/alzin/comy-chatsync/pkg/constant"

// Participant represents a member of a conversation
type Participant struct {
	Id    string `json:"id"`
	Role  string `json:"role"`
	Image string `json:"image,omitempty"`
}

// IsBot reports whether the participant carries the bot role
func (p *Participant) IsBot() bool {
	return p.Role == constant.RoleBot
}

// LastMessage is the most recent message preview of a conversation
type LastMessage struct {
	Content    string `json:"content"`
	OccurredAt int64  `json:"occurred_at"`
}

// ConversationRecord is the canonical per-conversation state held by
// the synchronizer. Id is unique across the record set at all times.
// IsUnread is derived, never set by presentation. IsBot is computed
// once at snapshot time and stays fixed for the record's lifetime.
type ConversationRecord struct {
	Id           string        `json:"id"`
	DisplayName  string        `json:"display_name"`
	Participants []Participant `json:"participants"`
	LastMessage  *LastMessage  `json:"last_message,omitempty"`
	LastActivity int64         `json:"last_activity"`
	ProfileImage string        `json:"profile_image,omitempty"`
	IsUnread     bool          `json:"is_unread"`
	IsBot        bool          `json:"is_bot"`
}

// Preview returns the text shown for the record's latest message,
// falling back to the placeholder when nothing was ever exchanged.
func (r *ConversationRecord) Preview() string {
	if r.LastMessage == nil || r.LastMessage.Content == "" {
		return constant.PlaceholderMessage
	}
	return r.LastMessage.Content
}

// Counterpart returns the participant that is neither the viewer nor
// the known bot. Returns nil when no such participant exists, which is
// the case for the bot conversation itself.
func (r *ConversationRecord) Counterpart(viewerId, botId string) *Participant {
	for i := range r.Participants {
		p := &r.Participants[i]
		if p.Id == viewerId {
			continue
		}
		if botId != "" && p.Id == botId {
			continue
		}
		return p
	}
	return nil
}

// Clone returns a deep copy of the record
func (r *ConversationRecord) Clone() *ConversationRecord {
	cp := *r
	cp.Participants = make([]Participant, len(r.Participants))
	copy(cp.Participants, r.Participants)
	if r.LastMessage != nil {
		msg := *r.LastMessage
		cp.LastMessage = &msg
	}
	return &cp
}

// ConversationView is the enriched copy of a record handed to the
// conversation pane when the viewer opens it. ProfileImage is always
// resolved: bot conversations get the bot image, others fall back to
// the default placeholder. CounterpartId is empty for bot
// conversations.
type ConversationView struct {
	ConversationRecord
	CounterpartId string `json:"counterpart_id,omitempty"`
}
