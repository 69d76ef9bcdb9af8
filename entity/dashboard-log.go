package entity

// DashboardLog is a precomputed per-day activity row. The remote store may
// not carry it at all; the mock store seeds a few for demo dashboards.
type DashboardLog struct {
	Id              string  `json:"id" bson:"id"`
	ClientId        string  `json:"client_id" bson:"client_id"`
	Date            string  `json:"date" bson:"date"`
	MessageCount    int     `json:"message_count" bson:"message_count"`
	CallCount       int     `json:"call_count" bson:"call_count"`
	AvgResponseTime float64 `json:"avg_response_time" bson:"avg_response_time"`
}
