package apperr

import "errors"

// Sentinel errors for every authorization decision this backend makes.
// Each one maps 1:1 to an HTTP status at the handler layer, so they must
// never be collapsed into a generic failure or wrapped out of recognition.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSignature   = errors.New("invalid token")
	ErrExpired            = errors.New("token expired")
	ErrWrongTokenKind     = errors.New("invalid token type")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateFollow    = errors.New("already subscribed")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrInsufficientRole   = errors.New("insufficient role")
	ErrStaleSession       = errors.New("stale session")
)
