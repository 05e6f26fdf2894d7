package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/tagadplatforms/contact-api/internal/dto"
	"github.com/tagadplatforms/contact-api/internal/entity"
	"github.com/tagadplatforms/contact-api/internal/repository"
)

const defaultPhoneRegion = "IN"

// RequestMeta carries best-effort request metadata recorded alongside a
// submission. Either value may be empty without blocking the submission.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// ContactsService coordinates validation, assembly and persistence of
// contact-form submissions.
type ContactsService struct {
	repo   repository.ContactsRepository
	region string
	now    func() time.Time
}

// NewContactsService creates a new service instance. The region configures
// best-effort E.164 normalization of the WhatsApp number.
func NewContactsService(repo repository.ContactsRepository, region string) *ContactsService {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ContactsService{repo: repo, region: region, now: time.Now}
}

// Submit validates the payload and, when clean, persists the assembled record.
// Validation violations are returned as data; only store failures surface as
// errors.
func (s *ContactsService) Submit(ctx context.Context, in dto.ContactSubmission, meta RequestMeta) (uuid.UUID, []dto.FieldError, error) {
	normalized, fieldErrs := ValidateSubmission(in)
	if len(fieldErrs) > 0 {
		return uuid.Nil, fieldErrs, nil
	}

	id, err := s.repo.Insert(ctx, s.assemble(normalized, meta))
	if err != nil {
		return uuid.Nil, nil, err
	}
	return id, nil, nil
}

// ListRecent returns the most recently created submissions, newest first.
func (s *ContactsService) ListRecent(ctx context.Context, limit int) ([]entity.Contact, error) {
	return s.repo.ListRecent(ctx, limit)
}

// assemble builds the persistence record. created_at is fixed here, before
// the insert round trip.
func (s *ContactsService) assemble(in dto.ContactSubmission, meta RequestMeta) *entity.Contact {
	contact := &entity.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Company:   in.Company,
		Whatsapp:  in.Whatsapp,
		Service:   in.Service,
		Message:   in.Message,
		Status:    entity.StatusNew,
		Priority:  entity.PriorityMedium,
		Source:    entity.SourceWebsite,
		CreatedAt: s.now().UTC(),
	}

	if ip := strings.TrimSpace(meta.IPAddress); ip != "" {
		contact.IPAddress = &ip
	}
	if ua := strings.TrimSpace(meta.UserAgent); ua != "" {
		contact.UserAgent = &ua
	}
	if e164 := normalizeWhatsapp(in.Whatsapp, s.region); e164 != "" {
		contact.WhatsappE164 = &e164
	}

	return contact
}

// normalizeWhatsapp returns the E.164 form of the number when it parses as a
// valid number for the region, and "" otherwise. Failures never block a
// submission.
func normalizeWhatsapp(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
