package entity

// MessageEvent is one inbound message-arrival event from the live
// channel. Arrival order, not CreatedAt, is the ordering the merger
// relies on.
type MessageEvent struct {
	ConversationId string   `json:"conversationId"`
	Content        string   `json:"content"`
	CreatedAt      int64    `json:"createdAt"`
	ReadBy         []string `json:"readBy"`
}

// ReadByUser reports whether userId appears in the event's read-by set
func (e *MessageEvent) ReadByUser(userId string) bool {
	for _, id := range e.ReadBy {
		if id == userId {
			return true
		}
	}
	return false
}
