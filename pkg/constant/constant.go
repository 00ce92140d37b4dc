package constant

// Participant roles
const (
	RoleMember = "member"
	RoleBot    = "bot"
)

// DefaultBotName is the display name of the official assistant
// conversation. Bot identity resolution matches on it unless the
// config overrides the name.
const DefaultBotName = "COMY オフィシャル AI"

// Presentation fallbacks
const (
	PlaceholderName         = "Private Chat"
	PlaceholderMessage      = "メッセージはありません "
	PlaceholderProfileImage = "/images/profileImage.png"
	DefaultBotImage         = "/images/hedgehog.png"
)

// Wire event names
const (
	EventReceiveMessage = "receive_message"
	EventNewMessage     = "newMessage"
	EventJoinChat       = "joinChat"
)

// MessageEventNames lists the inbound event names that carry a message
// payload. The transport publishes the same payload under both names,
// so subscribers treat them as one logical event.
var MessageEventNames = []string{EventReceiveMessage, EventNewMessage}

// Platform Ids
const (
	PlatformIdUnknown = 0
	PlatformIdIOS     = 1
	PlatformIdAndroid = 2
	PlatformIdWindows = 3
	PlatformIdMacOS   = 4
	PlatformIdWeb     = 5
)

// PlatformIdToName converts platform Id to name
func PlatformIdToName(platformId int) string {
	switch platformId {
	case PlatformIdIOS:
		return "iOS"
	case PlatformIdAndroid:
		return "Android"
	case PlatformIdWindows:
		return "Windows"
	case PlatformIdMacOS:
		return "macOS"
	case PlatformIdWeb:
		return "Web"
	default:
		return "Unknown"
	}
}
