package utils

import (
	"errors"
	"fmt"
)

// ErrorKind tags an AppError so the error middleware can match on it.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindBadRequest
	KindConstraint
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindConstraint:
		return "constraint"
	default:
		return "internal"
	}
}

// Entity names used in not-found messages.
const (
	EntityTopic    = "Topic"
	EntityArticle  = "Article"
	EntityComment  = "Comment"
	EntityUsername = "Username"
	EntityAuthor   = "Author"
	EntityColumn   = "Column"
)

// PostgreSQL SQLSTATE codes the API translates.
const (
	CodeNumericValueOutOfRange    = "22003"
	CodeInvalidTextRepresentation = "22P02"
	CodeNotNullViolation          = "23502"
	CodeForeignKeyViolation       = "23503"
)

// AppError is the failure type passed from repositories and handlers to the error middleware.
type AppError struct {
	Kind ErrorKind
	// Entity is set for KindNotFound.
	Entity string
	// Reason is a log-only detail for KindBadRequest.
	Reason string
	// Code and Constraint are set for KindConstraint.
	Code       string
	Constraint string
	Err        error
}

func (e *AppError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return e.Entity + " not found"
	case KindBadRequest:
		if e.Reason != "" {
			return "bad request: " + e.Reason
		}
		return "bad request"
	case KindConstraint:
		return fmt.Sprintf("constraint violation code=%s constraint=%s: %v", e.Code, e.Constraint, e.Err)
	default:
		if e.Err != nil {
			return "internal: " + e.Err.Error()
		}
		return "internal"
	}
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches another *AppError by kind, and by entity when the target names one.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Entity == "" || t.Entity == e.Entity
}

// NotFound reports a missing entity.
func NotFound(entity string) *AppError {
	return &AppError{Kind: KindNotFound, Entity: entity}
}

// BadRequest reports malformed input.
func BadRequest(reason string) *AppError {
	return &AppError{Kind: KindBadRequest, Reason: reason}
}

// Constraint reports a storage constraint violation.
func Constraint(code, constraint string, err error) *AppError {
	return &AppError{Kind: KindConstraint, Code: code, Constraint: constraint, Err: err}
}

// Internal wraps an unclassified failure.
func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Err: err}
}

// AsAppError extracts an *AppError from err's chain.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
