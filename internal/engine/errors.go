package engine

import "errors"

// ErrSequence indicates an answer submitted out of order: for a question
// that is not the one currently pending, or against a session that is no
// longer active. The session is left exactly as it was.
var ErrSequence = errors.New("out-of-sequence submission")
