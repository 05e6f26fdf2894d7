package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tagadplatforms/contact-api/internal/dto"
	"github.com/tagadplatforms/contact-api/internal/entity"
	middlewarepkg "github.com/tagadplatforms/contact-api/internal/middleware"
	"github.com/tagadplatforms/contact-api/internal/service"
)

const (
	submitSuccessMessage = "Contact form submitted successfully! We will get back to you soon."
	submitFailureMessage = "Failed to submit contact form. Please try again later."
	listFailureMessage   = "Failed to retrieve contact submissions"

	recentSubmissionsLimit = 10
)

// ContactsHandler exposes the contact form endpoints.
type ContactsHandler struct {
	service *service.ContactsService
	devMode bool
}

// NewContactsHandler creates a new handler instance. devMode controls
// whether internal error detail is echoed to clients.
func NewContactsHandler(service *service.ContactsService, devMode bool) *ContactsHandler {
	return &ContactsHandler{service: service, devMode: devMode}
}

// Submit handles POST /api/contact/submit requests.
func (h *ContactsHandler) Submit(c echo.Context) error {
	var req dto.ContactSubmission
	if err := c.Bind(&req); err != nil {
		return Failure(c, http.StatusBadRequest, "Invalid request payload", err, h.devMode)
	}

	meta := service.RequestMeta{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}

	id, fieldErrs, err := h.service.Submit(c.Request().Context(), req, meta)
	if len(fieldErrs) > 0 {
		return ValidationFailed(c, fieldErrs)
	}
	if err != nil {
		log.Printf("request_id=%s contact submit failed: %v", middlewarepkg.RequestIDFromContext(c), err)
		return Failure(c, http.StatusInternalServerError, submitFailureMessage, err, h.devMode)
	}

	log.Printf("request_id=%s new contact submission id=%s", middlewarepkg.RequestIDFromContext(c), id)
	return Created(c, submitSuccessMessage, id.String())
}

// List handles GET /api/contact requests and returns the most recent
// submissions, newest first.
func (h *ContactsHandler) List(c echo.Context) error {
	contacts, err := h.service.ListRecent(c.Request().Context(), recentSubmissionsLimit)
	if err != nil {
		log.Printf("request_id=%s contact list failed: %v", middlewarepkg.RequestIDFromContext(c), err)
		return Failure(c, http.StatusInternalServerError, listFailureMessage, err, h.devMode)
	}

	if contacts == nil {
		contacts = []entity.Contact{}
	}
	return Success(c, http.StatusOK, "", contacts)
}
