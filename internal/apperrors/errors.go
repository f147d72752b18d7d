package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrUnauthorized indicates that the caller does not own the resource.
// Callers must treat this as a fatal abort of the operation, never a retry.
var ErrUnauthorized = errors.New("unauthorized access")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates that a write would violate a uniqueness constraint,
// such as a second journal entry for the same user and date.
var ErrConflict = errors.New("resource already exists")

// ErrStorage indicates a transport or backend failure against the document store.
var ErrStorage = errors.New("storage failure")

// ErrCompletion indicates a failure calling the completion API.
var ErrCompletion = errors.New("completion request failed")

// ErrParse indicates that a completion response could not be parsed into the
// expected structure (e.g. quiz JSON).
var ErrParse = errors.New("response parse failure")
