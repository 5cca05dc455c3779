package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnbalancedEntry indicates that a journal entry's debits do not equal its
// credits. Kept distinct from ErrValidation because it is the signature
// invariant of double-entry bookkeeping.
var ErrUnbalancedEntry = errors.New("journal entry is not balanced")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the required role for the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the resource is in a state that conflicts with the requested action.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
