package inspect

// MatchErrorKind classifies why a captured request could not be matched to
// a declared method.
type MatchErrorKind string

const (
	ErrEmptyBody     MatchErrorKind = "empty-body"
	ErrMalformedBody MatchErrorKind = "malformed-body"
	ErrBadEnvelope   MatchErrorKind = "bad-envelope"
	ErrUnknownMethod MatchErrorKind = "unknown-method"
)

// MatchError is a recoverable match failure. It never escapes inspection:
// the facade converts it into a placeholder operation warning.
type MatchError struct {
	Kind    MatchErrorKind
	Message string
}

func (e *MatchError) Error() string {
	return e.Message
}

func newMatchError(kind MatchErrorKind, message string) *MatchError {
	return &MatchError{Kind: kind, Message: message}
}
