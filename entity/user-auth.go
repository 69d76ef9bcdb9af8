package entity

// AuthUser is the authenticated principal attached to a request context:
// a tenant user (ClientId set), a back-office admin, or a service caller
// authenticated by API key.
type AuthUser struct {
	ClientId string `json:"client_id" bson:"client_id"`
	Name     string `json:"name" bson:"name"`
	Admin    bool   `json:"admin" bson:"admin"`
}
