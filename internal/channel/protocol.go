package channel

import (
	"encoding/json"

	"github.com/alzin/comy-chatsync/pkg/constant"
)

// Frame is the wire envelope for both directions of the channel
type Frame struct {
	Event       string          `json:"event"`
	OperationId string          `json:"operation_id,omitempty"`
	Data        json.RawMessage `json:"data,omitempty"`
}

// JoinData is the payload of an outbound joinChat frame
type JoinData struct {
	ConversationId string `json:"conversationId"`
}

// IsMessageEvent reports whether an inbound event name carries a
// message payload. The transport publishes the same payload under two
// names; both dispatch identically.
func IsMessageEvent(name string) bool {
	for _, alias := range constant.MessageEventNames {
		if name == alias {
			return true
		}
	}
	return false
}

// Encode encodes data to JSON bytes
func Encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Decode decodes JSON bytes to struct
func Decode(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
