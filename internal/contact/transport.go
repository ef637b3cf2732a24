package contact

import "time"

// ContactRequest is the body of POST /api/contact.
type ContactRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description" validate:"required,min=10"`
}

type ContactResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}
