package entity

import "github.com/alzin/comy-chatsync/pkg/constant"

// RawMessage is the latest-message sub-object of a snapshot entry
type RawMessage struct {
	Content   string   `json:"content"`
	CreatedAt int64    `json:"createdAt"`
	ReadBy    []string `json:"readBy"`
}

// ReadByUser reports whether userId appears in the read-by set
func (m *RawMessage) ReadByUser(userId string) bool {
	for _, id := range m.ReadBy {
		if id == userId {
			return true
		}
	}
	return false
}

// RawConversation mirrors one entry of the snapshot payload as the
// provider delivers it
type RawConversation struct {
	Id            string        `json:"id"`
	Name          string        `json:"name,omitempty"`
	Users         []Participant `json:"users"`
	LatestMessage *RawMessage   `json:"latestMessage,omitempty"`
	UpdatedAt     int64         `json:"updatedAt"`
}

// BotParticipant returns the bot-role participant of the entry, or nil
func (c *RawConversation) BotParticipant() *Participant {
	for i := range c.Users {
		if c.Users[i].IsBot() {
			return &c.Users[i]
		}
	}
	return nil
}

// CounterpartImage returns the image of the first participant that is
// neither the viewer nor a bot, or empty when none resolves
func (c *RawConversation) CounterpartImage(viewerId string) string {
	for i := range c.Users {
		p := &c.Users[i]
		if p.Id == viewerId || p.IsBot() {
			continue
		}
		return p.Image
	}
	return ""
}

// DisplayName returns the entry's name or the placeholder
func (c *RawConversation) DisplayName() string {
	if c.Name == "" {
		return constant.PlaceholderName
	}
	return c.Name
}
