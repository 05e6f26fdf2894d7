package auth

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUnauthorized indicates the request carried no acceptable credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates valid credentials without the required role.
	ErrForbidden = errors.New("forbidden")
)

// Identity describes an authenticated caller.
type Identity struct {
	Subject string
	Email   string
	Role    string
}

// Policy is the pluggable authentication capability: validate a bearer token
// and check role membership. The implementation is selected at startup via
// configuration.
type Policy interface {
	Authenticate(token string) (*Identity, error)
	Authorize(identity *Identity, role string) error
}

// AllowAllPolicy accepts every request regardless of credentials. It exists
// as a development placeholder and must not be used in production.
type AllowAllPolicy struct {
	warn sync.Once
}

// NewAllowAllPolicy constructs the allow-all placeholder policy.
func NewAllowAllPolicy() *AllowAllPolicy {
	return &AllowAllPolicy{}
}

// Authenticate accepts any token, including none at all.
func (p *AllowAllPolicy) Authenticate(string) (*Identity, error) {
	p.warn.Do(func() {
		log.Printf("auth_policy=allow-all every request is accepted; do not use in production")
	})
	return &Identity{Role: "admin"}, nil
}

// Authorize always grants access.
func (p *AllowAllPolicy) Authorize(*Identity, string) error {
	return nil
}

// JWTPolicy validates HMAC signed bearer tokens issued with a shared secret.
type JWTPolicy struct {
	manager *JWTManager
}

// NewJWTPolicy constructs a policy backed by the given manager.
func NewJWTPolicy(manager *JWTManager) *JWTPolicy {
	return &JWTPolicy{manager: manager}
}

// Authenticate verifies the bearer token and extracts the caller identity.
func (p *JWTPolicy) Authenticate(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := p.manager.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return &Identity{Subject: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}

// Authorize requires an exact role match.
func (p *JWTPolicy) Authorize(identity *Identity, role string) error {
	if identity == nil || identity.Role == "" {
		return ErrForbidden
	}
	if identity.Role != role {
		return ErrForbidden
	}
	return nil
}

// StaticTokenPolicy compares the bearer token against a bcrypt hash held in
// configuration. Callers authenticated this way act as the admin identity.
type StaticTokenPolicy struct {
	hash []byte
}

// NewStaticTokenPolicy constructs a policy from a bcrypt token hash.
func NewStaticTokenPolicy(hash string) *StaticTokenPolicy {
	return &StaticTokenPolicy{hash: []byte(hash)}
}

// Authenticate checks the token against the configured hash.
func (p *StaticTokenPolicy) Authenticate(token string) (*Identity, error) {
	if token == "" || len(p.hash) == 0 {
		return nil, ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(p.hash, []byte(token)); err != nil {
		return nil, ErrUnauthorized
	}
	return &Identity{Subject: "admin", Role: "admin"}, nil
}

// Authorize requires an exact role match.
func (p *StaticTokenPolicy) Authorize(identity *Identity, role string) error {
	if identity == nil || identity.Role != role {
		return ErrForbidden
	}
	return nil
}

// NewPolicy selects a policy implementation by mode. Unknown modes fall back
// to allow-all so a misconfigured dev environment still boots; the selected
// mode is logged either way.
func NewPolicy(mode string, manager *JWTManager, adminTokenHash string) Policy {
	switch mode {
	case "jwt":
		log.Printf("auth_policy=jwt")
		return NewJWTPolicy(manager)
	case "token":
		log.Printf("auth_policy=token")
		return NewStaticTokenPolicy(adminTokenHash)
	default:
		return NewAllowAllPolicy()
	}
}
