package review

import (
	"time"

	"careerhub/internal/common"
)

// Review is feedback left on a mentorship listing.
type Review struct {
	ID          common.UUID `json:"id"`
	ListingID   common.UUID `json:"listing_id"`
	AuthorEmail string      `json:"author_email"`
	Rating      int         `json:"rating"`
	Comment     string      `json:"comment"`
	CreatedAt   time.Time   `json:"created_at"`
}
