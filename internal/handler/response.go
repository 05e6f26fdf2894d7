package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tagadplatforms/contact-api/internal/dto"
)

// APIResponse describes the standard envelope returned by the API.
type APIResponse struct {
	Success      bool             `json:"success"`
	Message      string           `json:"message,omitempty"`
	Data         any              `json:"data,omitempty"`
	Errors       []dto.FieldError `json:"errors,omitempty"`
	SubmissionID *string          `json:"submissionId,omitempty"`
	Error        string           `json:"error,omitempty"`
}

// Success sends a successful response using the shared envelope format.
func Success(c echo.Context, status int, message string, data any) error {
	if status == 0 {
		status = http.StatusOK
	}
	return c.JSON(status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created reports a stored submission along with its generated id.
func Created(c echo.Context, message, submissionID string) error {
	id := submissionID
	return c.JSON(http.StatusCreated, APIResponse{
		Success:      true,
		Message:      message,
		SubmissionID: &id,
	})
}

// ValidationFailed reports the full set of violated field rules.
func ValidationFailed(c echo.Context, errs []dto.FieldError) error {
	return c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Message: "Validation errors",
		Errors:  errs,
	})
}

// Failure reports a server-side fault with a generic user-facing message.
// The internal detail is echoed only when exposeDetail is set, i.e. outside
// production.
func Failure(c echo.Context, status int, message string, detail error, exposeDetail bool) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	payload := APIResponse{Success: false, Message: message}
	if exposeDetail && detail != nil {
		payload.Error = detail.Error()
	}
	return c.JSON(status, payload)
}
