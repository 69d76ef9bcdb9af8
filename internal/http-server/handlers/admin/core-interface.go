package admin

import (
	"AgentDesk/internal/database"
)

type Core interface {
	ListFallbackEvents(limit int64) ([]repository.FallbackEvent, error)
}
