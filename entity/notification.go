package entity

type Notification struct {
	Id          string `json:"id" bson:"id"`
	ClientId    string `json:"client_id" bson:"client_id" validate:"required"`
	Type        string `json:"type" bson:"type"`
	Title       string `json:"title" bson:"title" validate:"required"`
	Description string `json:"description" bson:"description"`
	Status      string `json:"status" bson:"status" validate:"omitempty,oneof=read unread"`
	CreatedDate string `json:"created_date" bson:"created_date"`
	Link        string `json:"link" bson:"link"`
	Priority    string `json:"priority" bson:"priority"`
	SourceId    string `json:"source_id" bson:"source_id"`
}

const (
	NotificationRead   = "read"
	NotificationUnread = "unread"
)
