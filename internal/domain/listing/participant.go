package listing

import (
	"time"

	"careerhub/internal/common"
)

// Participant is a user enrolled into an event or course roster.
type Participant struct {
	ListingID common.UUID `json:"listing_id"`
	Email     string      `json:"email"`
	JoinedAt  time.Time   `json:"joined_at"`
}
