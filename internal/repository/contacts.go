package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tagadplatforms/contact-api/internal/entity"
)

// ErrStoreUnavailable indicates the store could not complete the operation.
// Callers surface it as a generic failure; the wrapped detail is for logs.
var ErrStoreUnavailable = errors.New("contact store unavailable")

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// ContactsRepository describes persistence operations for contact submissions.
type ContactsRepository interface {
	Insert(ctx context.Context, contact *entity.Contact) (uuid.UUID, error)
	ListRecent(ctx context.Context, limit int) ([]entity.Contact, error)
}

// pgxPool is the subset of pgxpool.Pool the repository depends on.
type pgxPool interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXContactsRepository implements ContactsRepository using pgx.
type PGXContactsRepository struct {
	pool pgxPool
}

// NewPGXContactsRepository wires a pgx backed repository.
func NewPGXContactsRepository(pool *pgxpool.Pool) *PGXContactsRepository {
	return &PGXContactsRepository{pool: pool}
}

// Insert persists a single submission and returns the store-generated id.
func (r *PGXContactsRepository) Insert(ctx context.Context, contact *entity.Contact) (uuid.UUID, error) {
	if contact == nil {
		return uuid.Nil, fmt.Errorf("contact payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contacts (
            name,
            email,
            company,
            whatsapp,
            whatsapp_e164,
            service,
            message,
            status,
            priority,
            source,
            ip_address,
            user_agent,
            created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `,
		contact.Name,
		contact.Email,
		contact.Company,
		contact.Whatsapp,
		contact.WhatsappE164,
		contact.Service,
		contact.Message,
		contact.Status,
		contact.Priority,
		contact.Source,
		contact.IPAddress,
		contact.UserAgent,
		contact.CreatedAt,
	)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, storeErr("insert contact", err)
	}
	return id, nil
}

// ListRecent returns up to limit submissions ordered by creation time
// descending. A non-positive limit falls back to the default page size.
func (r *PGXContactsRepository) ListRecent(ctx context.Context, limit int) ([]entity.Contact, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	rows, err := r.pool.Query(ctx, `
        SELECT
            id,
            name,
            email,
            company,
            whatsapp,
            whatsapp_e164,
            service,
            message,
            status,
            priority,
            source,
            ip_address,
            user_agent,
            created_at
        FROM contacts
        ORDER BY created_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, storeErr("list contacts", err)
	}
	defer rows.Close()

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, storeErr("list contacts", err)
	}
	return contacts, nil
}

func scanContacts(rows pgx.Rows) ([]entity.Contact, error) {
	var contacts []entity.Contact
	for rows.Next() {
		var (
			c            entity.Contact
			whatsappE164 sql.NullString
			ipAddress    sql.NullString
			userAgent    sql.NullString
		)

		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Email,
			&c.Company,
			&c.Whatsapp,
			&whatsappE164,
			&c.Service,
			&c.Message,
			&c.Status,
			&c.Priority,
			&c.Source,
			&ipAddress,
			&userAgent,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}

		c.WhatsappE164 = nullStringToPtr(whatsappE164)
		c.IPAddress = nullStringToPtr(ipAddress)
		c.UserAgent = nullStringToPtr(userAgent)

		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return contacts, nil
}

// storeErr folds any driver failure into ErrStoreUnavailable, keeping the
// Postgres error code when one is present.
func storeErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s: %s (code %s)", ErrStoreUnavailable, op, pgErr.Message, pgErr.Code)
	}
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

func nullStringToPtr(value sql.NullString) *string {
	if value.Valid {
		val := value.String
		return &val
	}
	return nil
}
