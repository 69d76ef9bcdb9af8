package entity

type Payment struct {
	Id          string  `json:"id" bson:"id"`
	ClientId    string  `json:"client_id" bson:"client_id" validate:"required"`
	InvoiceId   string  `json:"invoice_id" bson:"invoice_id" validate:"required"`
	Amount      float64 `json:"amount" bson:"amount" validate:"gte=0"`
	Status      string  `json:"status" bson:"status"`
	PaymentDate string  `json:"payment_date" bson:"payment_date"`
	Method      string  `json:"method" bson:"method"`
}
