package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindForbidden  Kind = "forbidden"
)

// Error is a domain failure that maps onto a client-facing HTTP response.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Field   string
	Details map[string]any

	// status overrides the Kind default when set.
	status int
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) HTTPStatus() int {
	if e.status != 0 {
		return e.status
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// ===============================
// Constructors
// ===============================

// Validation names the offending field.
func Validation(field, message string) error {
	return &Error{
		Kind:    KindValidation,
		Code:    "invalid_" + field,
		Message: message,
		Field:   field,
	}
}

func NotFound(entity string, id uint) error {
	return &Error{
		Kind:    KindNotFound,
		Code:    entity + "_not_found",
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

// Conflict is a state conflict: the entity exists but the operation does
// not apply to its current state.
func Conflict(code, message string) error {
	return &Error{
		Kind:    KindConflict,
		Code:    code,
		Message: message,
	}
}

// SchedulingConflict is reported to clients as 400 with the reason and
// the alternatives that would have been accepted.
func SchedulingConflict(message string, details map[string]any) error {
	return &Error{
		Kind:    KindConflict,
		Code:    "scheduling_conflict",
		Message: message,
		Details: details,
		status:  http.StatusBadRequest,
	}
}

func Forbidden(message string) error {
	return &Error{
		Kind:    KindForbidden,
		Code:    "forbidden",
		Message: message,
	}
}

// ===============================
// Matching
// ===============================

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

func IsCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

func IsNotFound(err error) bool   { return IsKind(err, KindNotFound) }
func IsValidation(err error) bool { return IsKind(err, KindValidation) }
func IsConflict(err error) bool   { return IsKind(err, KindConflict) }
