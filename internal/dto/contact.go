package dto

// ContactSubmission is the payload accepted by the contact form endpoint.
type ContactSubmission struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company,omitempty"`
	Whatsapp string `json:"whatsapp"`
	Service  string `json:"service,omitempty"`
	Message  string `json:"message"`
}

// FieldError reports a single validation rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
