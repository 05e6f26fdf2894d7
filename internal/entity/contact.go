package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact statuses and priorities assigned to new submissions. Lifecycle
// transitions happen outside this service.
const (
	StatusNew      = "new"
	PriorityMedium = "medium"
	SourceWebsite  = "website"
)

// Contact represents a persisted contact-form submission.
type Contact struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company"`
	Whatsapp     string    `json:"whatsapp"`
	WhatsappE164 *string   `json:"whatsapp_e164,omitempty"`
	Service      string    `json:"service"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Source       string    `json:"source"`
	IPAddress    *string   `json:"ip_address,omitempty"`
	UserAgent    *string   `json:"user_agent,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
