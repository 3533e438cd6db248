package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation is blocked by the current state of
// the resource (e.g. removing a book while copies are on loan).
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrLimitExceeded indicates that a member has reached their borrowing limit.
var ErrLimitExceeded = errors.New("borrowing limit reached")

// ErrUnavailable indicates that no copy of the requested book is available,
// or that an optional subsystem (e.g. notifications) is not configured.
var ErrUnavailable = errors.New("resource unavailable")

// ErrForbidden indicates that the authenticated user lacks the required role.
var ErrForbidden = errors.New("forbidden")
