// Package apperr defines the error kinds shared by all command
// handlers. Every validation failure is one of four kinds, each with a
// fixed HTTP status; anything without a kind is a server fault.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// KindNotFound - a referenced entity id does not exist
	KindNotFound Kind = iota + 1
	// KindConflict - a uniqueness constraint would be violated
	KindConflict
	// KindPrecondition - a cross-entity rule would be violated
	KindPrecondition
	// KindReferential - a create references a non-existent parent
	KindReferential
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Precondition(format string, args ...any) *Error {
	return &Error{Kind: KindPrecondition, Message: fmt.Sprintf(format, args...)}
}

func Referential(format string, args ...any) *Error {
	return &Error{Kind: KindReferential, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Status maps an error to its HTTP status code. Errors that are not
// kinded map to 500.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindNotFound:
			return http.StatusNotFound
		case KindConflict:
			return http.StatusConflict
		case KindPrecondition:
			return http.StatusPreconditionFailed
		case KindReferential:
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}
