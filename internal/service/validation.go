package service

import (
	"regexp"
	"strings"

	"github.com/tagadplatforms/contact-api/internal/dto"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)

// AllowedServices is the closed, case-sensitive set of selectable services.
// The empty string stands for "unspecified" and is accepted.
var AllowedServices = []string{
	"E-Commerce Development",
	"Mobile App Development",
	"Business Websites",
	"Digital Marketing",
	"ERP Solutions",
	"Project Management Software",
	"Email Marketing",
	"Salesforce Integration",
	"Other",
}

// Validation error messages, one per field rule.
const (
	msgName    = "Name must be between 2 and 100 characters"
	msgEmail   = "Please enter a valid email address"
	msgCompany = "Company name cannot exceed 100 characters"
	msgPhone   = "WhatsApp number must be between 10 and 15 characters"
	msgService = "Invalid service selection"
	msgMessage = "Message must be between 10 and 2000 characters"
)

// ValidateSubmission runs every field rule and collects all violations in
// rule order; it never short-circuits. The returned submission carries
// trimmed values, a lowercased email, and empty strings for omitted optional
// fields.
func ValidateSubmission(in dto.ContactSubmission) (dto.ContactSubmission, []dto.FieldError) {
	out := dto.ContactSubmission{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Company:  strings.TrimSpace(in.Company),
		Whatsapp: strings.TrimSpace(in.Whatsapp),
		Service:  strings.TrimSpace(in.Service),
		Message:  strings.TrimSpace(in.Message),
	}

	var errs []dto.FieldError

	if n := len([]rune(out.Name)); n < 2 || n > 100 {
		errs = append(errs, dto.FieldError{Field: "name", Message: msgName})
	}
	if !emailPattern.MatchString(out.Email) {
		errs = append(errs, dto.FieldError{Field: "email", Message: msgEmail})
	}
	if len([]rune(out.Company)) > 100 {
		errs = append(errs, dto.FieldError{Field: "company", Message: msgCompany})
	}
	if n := len([]rune(out.Whatsapp)); n < 10 || n > 15 {
		errs = append(errs, dto.FieldError{Field: "whatsapp", Message: msgPhone})
	}
	if out.Service != "" && !isAllowedService(out.Service) {
		errs = append(errs, dto.FieldError{Field: "service", Message: msgService})
	}
	if n := len([]rune(out.Message)); n < 10 || n > 2000 {
		errs = append(errs, dto.FieldError{Field: "message", Message: msgMessage})
	}

	return out, errs
}

func isAllowedService(value string) bool {
	for _, allowed := range AllowedServices {
		if value == allowed {
			return true
		}
	}
	return false
}
