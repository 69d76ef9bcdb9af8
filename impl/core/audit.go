package core

import (
	"fmt"

	"AgentDesk/internal/database"
)

// ListFallbackEvents returns the newest fallback audit entries for the
// admin panel. Requires the Mongo repository.
func (c *Core) ListFallbackEvents(limit int64) ([]repository.FallbackEvent, error) {
	if c.repo == nil {
		return nil, fmt.Errorf("audit repository not configured")
	}
	if limit <= 0 {
		limit = 50
	}
	return c.repo.RecentFallbacks(limit)
}
