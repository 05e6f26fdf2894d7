package middleware

// Context keys used to store request metadata.
const (
	ContextKeyIdentity  = "identity"
	ContextKeyRequestID = "request_id"
)
