package domain

import "errors"

// ErrValidation indicates a malformed profile or an answer outside a
// question's declared domain. Always recoverable by re-prompting; no
// operation returning it mutates session state.
var ErrValidation = errors.New("validation failed")
