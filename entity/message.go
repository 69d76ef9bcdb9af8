package entity

type Message struct {
	Id          string `json:"id" bson:"id"`
	ClientId    string `json:"client_id" bson:"client_id" validate:"required"`
	SessionId   string `json:"session_id" bson:"session_id" validate:"required"`
	Timestamp   string `json:"timestamp" bson:"timestamp"`
	Channel     string `json:"channel" bson:"channel"`
	UserMessage string `json:"user_message" bson:"user_message"`
	AiResponse  string `json:"ai_response" bson:"ai_response"`
}

// Session is one conversation thread: every message sharing a session_id.
type Session struct {
	SessionId    string `json:"session_id"`
	Channel      string `json:"channel"`
	MessageCount int    `json:"message_count"`
	LatestAt     string `json:"latest_at"`
}
