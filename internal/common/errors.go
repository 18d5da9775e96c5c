package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound  = errors.New("resource not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")

	// Content errors
	ErrContentNotFound  = errors.New("content not found")
	ErrRevisionNotFound = errors.New("revision not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrSiteNotFound     = errors.New("site not found")

	// ErrRevisionOverflow means the per-item revision counter reached its
	// integer ceiling. Fatal: the transaction aborts, nothing is written.
	ErrRevisionOverflow = errors.New("revision counter exhausted")

	// Collaborator errors
	ErrUserNotFound         = errors.New("user not found")
	ErrCollaboratorNotFound = errors.New("collaborator not found")
	ErrOwnerlessContent     = errors.New("content has no owner, collaborator roster is not applicable")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrContentNotFound) ||
		errors.Is(err, ErrRevisionNotFound) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrSiteNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCollaboratorNotFound)
}
