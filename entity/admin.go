package entity

// Admin is a back-office account. Admins are the only records without a
// client_id: they operate across all tenants.
type Admin struct {
	Id           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name" validate:"required"`
	Email        string `json:"email" bson:"email" validate:"required,email"`
	PasswordHash string `json:"password_hash" bson:"password_hash"`
	CreatedDate  string `json:"created_date" bson:"created_date"`
}
