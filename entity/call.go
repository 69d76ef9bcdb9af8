package entity

type Call struct {
	Id              string  `json:"id" bson:"id"`
	ClientId        string  `json:"client_id" bson:"client_id" validate:"required"`
	Date            string  `json:"date" bson:"date"`
	Duration        float64 `json:"duration" bson:"duration" validate:"gte=0"`
	DurationMinutes float64 `json:"duration_minutes" bson:"duration_minutes" validate:"gte=0"`
	Summary         string  `json:"summary" bson:"summary"`
	Details         string  `json:"details" bson:"details"`
	AudioUrl        string  `json:"audio_url" bson:"audio_url" validate:"omitempty,url"`
}
