package models

// ErrorKind classifies failures at adapter boundaries. Raw provider detail
// stays in server-side logs; only the short Message reaches the caller.
type ErrorKind string

const (
	ErrKindInvalidDateRange  ErrorKind = "invalid_date_range"
	ErrKindMissingCredential ErrorKind = "missing_credential"
	ErrKindClientUnavailable ErrorKind = "client_unavailable"
	ErrKindAuthOrQuota       ErrorKind = "auth_or_quota"
	ErrKindDateRangeTooOld   ErrorKind = "date_range_too_old"
	ErrKindTransport         ErrorKind = "transport"
	ErrKindMalformedResponse ErrorKind = "malformed_response"
	ErrKindServiceError      ErrorKind = "service_error"
	ErrKindNotConfigured     ErrorKind = "not_configured"
)

// Failure pairs an ErrorKind with a short, human-readable message safe to
// surface to the caller.
type Failure struct {
	Kind    ErrorKind
	Message string
}

// NewFailure constructs a Failure
func NewFailure(kind ErrorKind, message string) *Failure {
	return &Failure{Kind: kind, Message: message}
}

// Error implements the error interface
func (f *Failure) Error() string {
	return f.Message
}

// Truncate shortens a message for outbound payloads. Full detail belongs in
// server-side logs only.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
