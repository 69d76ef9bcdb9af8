package entity

type Lead struct {
	Id        string `json:"id" bson:"id"`
	ClientId  string `json:"client_id" bson:"client_id" validate:"required"`
	Name      string `json:"name" bson:"name" validate:"required"`
	Email     string `json:"email" bson:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" bson:"phone"`
	Interest  string `json:"interest" bson:"interest"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}
