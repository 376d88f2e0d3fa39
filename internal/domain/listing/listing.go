package listing

import (
	"strings"
	"time"

	"careerhub/internal/common"
)

type Kind string

const (
	KindCourse        Kind = "course"
	KindMentorship    Kind = "mentorship"
	KindInternship    Kind = "internship"
	KindEvent         Kind = "event"
	KindSalaryInsight Kind = "salary-insight"
	KindBlog          Kind = "blog"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusClosed    Status = "closed"
	StatusOnHold    Status = "onhold"
	StatusCompleted Status = "completed"
)

type Listing struct {
	ID               common.UUID `json:"id"`
	Kind             Kind        `json:"kind"`
	Title            string      `json:"title"`
	PostedBy         string      `json:"posted_by"`
	Description      string      `json:"description"`
	Prerequisites    []string    `json:"prerequisites"`
	Skills           []string    `json:"skills"`
	Responsibilities []string    `json:"responsibilities"`
	ContactEmail     string      `json:"contact_email"`
	Status           Status      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

func ParseKind(value string) (Kind, bool) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	switch kind {
	case KindCourse, KindMentorship, KindInternship, KindEvent, KindSalaryInsight, KindBlog:
		return kind, true
	default:
		return "", false
	}
}

// EntityType is the discriminator recorded in the deletion log for this kind.
func (k Kind) EntityType() string {
	switch k {
	case KindCourse:
		return "Course"
	case KindMentorship:
		return "Mentorship"
	case KindInternship:
		return "Internship"
	case KindEvent:
		return "Event"
	case KindSalaryInsight:
		return "SalaryInsight"
	case KindBlog:
		return "Blog"
	default:
		return string(k)
	}
}
