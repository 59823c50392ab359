package models

import "time"

// MessageType enumerates chat message kinds accepted by the API.
type MessageType string

const (
	MessageText           MessageType = "text"
	MessageOfficialFlyer  MessageType = "official_flyer"
	MessageOfficialEvent  MessageType = "official_event"
	MessageOfficialText   MessageType = "official_text"
	MessageCommunityVideo MessageType = "community_video"
	MessageCommunityPhoto MessageType = "community_photo"
	MessageCommunityText  MessageType = "community_text"
)

var messageTypes = map[MessageType]struct{}{
	MessageText:           {},
	MessageOfficialFlyer:  {},
	MessageOfficialEvent:  {},
	MessageOfficialText:   {},
	MessageCommunityVideo: {},
	MessageCommunityPhoto: {},
	MessageCommunityText:  {},
}

// Valid reports whether t is one of the known message types.
func (t MessageType) Valid() bool {
	_, ok := messageTypes[t]
	return ok
}

// IsOfficial reports whether the message was posted by the room owner.
func (t MessageType) IsOfficial() bool {
	return t == MessageOfficialFlyer || t == MessageOfficialEvent || t == MessageOfficialText
}

// ChatMessage is one message in a room.
type ChatMessage struct {
	ID          ID          `json:"id,omitempty"`
	ClientID    string      `json:"client_id,omitempty"`
	RoomSlug    string      `json:"room_slug"`
	UserID      string      `json:"user_id,omitempty"`
	Username    string      `json:"username,omitempty"`
	MessageType MessageType `json:"message_type"`
	Content     string      `json:"content"`
	MediaURL    string      `json:"media_url,omitempty"`
	EventID     ID          `json:"event_id,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ChatMessagesResponse wraps GET /api/chat/messages.
type ChatMessagesResponse struct {
	Messages []ChatMessage `json:"messages"`
}
