package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tagadplatforms/contact-api/internal/dto"
	"github.com/tagadplatforms/contact-api/internal/entity"
)

type capturingContactsRepo struct {
	lastContact *entity.Contact
	lastLimit   int
	insertErr   error
	listErr     error
}

func (r *capturingContactsRepo) Insert(ctx context.Context, contact *entity.Contact) (uuid.UUID, error) {
	r.lastContact = contact
	if r.insertErr != nil {
		return uuid.Nil, r.insertErr
	}
	return uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"), nil
}

func (r *capturingContactsRepo) ListRecent(ctx context.Context, limit int) ([]entity.Contact, error) {
	r.lastLimit = limit
	if r.listErr != nil {
		return nil, r.listErr
	}
	return []entity.Contact{{Name: "Jane"}}, nil
}

func TestContactsService_Submit_AssemblesRecord(t *testing.T) {
	repo := &capturingContactsRepo{}
	svc := NewContactsService(repo, "IN")
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	meta := RequestMeta{IPAddress: "203.0.113.9", UserAgent: "Mozilla/5.0"}
	id, fieldErrs, err := svc.Submit(context.Background(), dto.ContactSubmission{
		Name:     "  Jane Doe ",
		Email:    "Jane@Example.COM",
		Whatsapp: "+919876543210",
		Message:  "Hello there, need help",
	}, meta)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldErrs) != 0 {
		t.Fatalf("unexpected field errors: %+v", fieldErrs)
	}
	if id == uuid.Nil {
		t.Fatalf("expected generated id")
	}

	record := repo.lastContact
	if record == nil {
		t.Fatalf("expected insert to be called")
	}
	if record.Name != "Jane Doe" || record.Email != "jane@example.com" {
		t.Fatalf("expected normalized fields, got %+v", record)
	}
	if record.Status != "new" || record.Priority != "medium" || record.Source != "website" {
		t.Fatalf("unexpected defaults: %+v", record)
	}
	if !record.CreatedAt.Equal(fixed) {
		t.Fatalf("expected created_at fixed at assembly time, got %s", record.CreatedAt)
	}
	if record.IPAddress == nil || *record.IPAddress != "203.0.113.9" {
		t.Fatalf("expected ip recorded, got %+v", record.IPAddress)
	}
	if record.UserAgent == nil || *record.UserAgent != "Mozilla/5.0" {
		t.Fatalf("expected user agent recorded, got %+v", record.UserAgent)
	}
	if record.WhatsappE164 == nil || *record.WhatsappE164 != "+919876543210" {
		t.Fatalf("expected e164 enrichment, got %+v", record.WhatsappE164)
	}
	if record.Whatsapp != "+919876543210" {
		t.Fatalf("expected submitted whatsapp preserved, got %q", record.Whatsapp)
	}
}

func TestContactsService_Submit_MissingMetadataDoesNotBlock(t *testing.T) {
	repo := &capturingContactsRepo{}
	svc := NewContactsService(repo, "")

	_, fieldErrs, err := svc.Submit(context.Background(), dto.ContactSubmission{
		Name:     "Al",
		Email:    "a@b.com",
		Whatsapp: "1234567890",
		Message:  "Hello there, need help",
	}, RequestMeta{})
	if err != nil || len(fieldErrs) != 0 {
		t.Fatalf("unexpected failure: err=%v fieldErrs=%+v", err, fieldErrs)
	}

	record := repo.lastContact
	if record.IPAddress != nil || record.UserAgent != nil {
		t.Fatalf("expected absent metadata stored as nil, got %+v", record)
	}
	// the unparseable-for-region number must not block the submission
	if record.WhatsappE164 != nil && *record.WhatsappE164 == "" {
		t.Fatalf("expected nil or populated e164, got empty string")
	}
}

func TestContactsService_Submit_ValidationStopsBeforeInsert(t *testing.T) {
	repo := &capturingContactsRepo{}
	svc := NewContactsService(repo, "IN")

	id, fieldErrs, err := svc.Submit(context.Background(), dto.ContactSubmission{Name: "A"}, RequestMeta{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fieldErrs) != 4 {
		t.Fatalf("expected 4 field errors, got %+v", fieldErrs)
	}
	if id != uuid.Nil {
		t.Fatalf("expected nil id on validation failure")
	}
	if repo.lastContact != nil {
		t.Fatalf("insert must not run for invalid submissions")
	}
}

func TestContactsService_Submit_StoreFailurePropagates(t *testing.T) {
	repo := &capturingContactsRepo{insertErr: context.DeadlineExceeded}
	svc := NewContactsService(repo, "IN")

	id, fieldErrs, err := svc.Submit(context.Background(), dto.ContactSubmission{
		Name:     "Al",
		Email:    "a@b.com",
		Whatsapp: "1234567890",
		Message:  "Hello there, need help",
	}, RequestMeta{})
	if err == nil {
		t.Fatalf("expected store error")
	}
	if len(fieldErrs) != 0 || id != uuid.Nil {
		t.Fatalf("unexpected result: id=%v fieldErrs=%+v", id, fieldErrs)
	}
}

func TestNormalizeWhatsapp(t *testing.T) {
	if got := normalizeWhatsapp("9876543210", "IN"); got != "+919876543210" {
		t.Fatalf("expected regional number normalized, got %q", got)
	}
	if got := normalizeWhatsapp("not-a-number", "IN"); got != "" {
		t.Fatalf("expected empty for unparseable input, got %q", got)
	}
	if got := normalizeWhatsapp("", "IN"); got != "" {
		t.Fatalf("expected empty for blank input, got %q", got)
	}
}
