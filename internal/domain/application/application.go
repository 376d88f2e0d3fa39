package application

import (
	"strings"
	"time"

	"careerhub/internal/common"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

type Application struct {
	ID             common.UUID `json:"id"`
	ListingID      common.UUID `json:"listing_id"`
	ApplicantEmail string      `json:"applicant_email"`
	ApplicantName  string      `json:"applicant_name"`
	ImageURL       string      `json:"image_url,omitempty"`
	Description    string      `json:"description,omitempty"`
	ResumeLink     string      `json:"resume_link,omitempty"`
	Status         Status      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// Normalize maps any stored status onto the three-state model. Absent or
// unknown values always read as pending.
func Normalize(status Status) Status {
	switch Status(strings.ToLower(strings.TrimSpace(string(status)))) {
	case StatusAccepted:
		return StatusAccepted
	case StatusRejected:
		return StatusRejected
	default:
		return StatusPending
	}
}

// IsAllowedTransition reports whether moving from one status to another is a
// legal moderation step: pending resolves to accepted or rejected, and either
// resolution can be reverted back to pending.
func IsAllowedTransition(from, to Status) bool {
	switch Normalize(from) {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted, StatusRejected:
		return to == StatusPending
	default:
		return false
	}
}
