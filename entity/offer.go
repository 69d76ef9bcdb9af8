package entity

type Offer struct {
	Id          string  `json:"id" bson:"id"`
	ClientId    string  `json:"client_id" bson:"client_id" validate:"required"`
	Title       string  `json:"title" bson:"title" validate:"required"`
	Amount      float64 `json:"amount" bson:"amount" validate:"gte=0"`
	Status      string  `json:"status" bson:"status" validate:"omitempty,oneof=Pending Accepted Rejected"`
	SentAt      string  `json:"sent_at" bson:"sent_at"`
	OfferUrl    string  `json:"offer_url" bson:"offer_url" validate:"omitempty,url"`
	PaymentLink string  `json:"payment_link" bson:"payment_link" validate:"omitempty,url"`
}

const (
	OfferPending  = "Pending"
	OfferAccepted = "Accepted"
	OfferRejected = "Rejected"
)

// OfferStatuses is the closed set used for zero-filled status charts.
var OfferStatuses = []string{OfferPending, OfferAccepted, OfferRejected}
