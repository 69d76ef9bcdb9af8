package entity

type User struct {
	Id           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name" validate:"required"`
	Email        string `json:"email" bson:"email" validate:"required,email"`
	PasswordHash string `json:"password_hash" bson:"password_hash"`
	CompanyName  string `json:"company_name" bson:"company_name" validate:"omitempty"`
	ClientId     string `json:"client_id" bson:"client_id" validate:"required"`
	CreatedDate  string `json:"created_date" bson:"created_date"`
}
