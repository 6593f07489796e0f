package errors

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType string

func (s ErrorType) String() string {
	return strings.ToLower(string(s))
}

const (
	ErrInternalError   ErrorType = "Internal Error"
	ErrNotFound        ErrorType = "Not Found"
	ErrAlreadyExists   ErrorType = "Resource Already Exists"
	ErrInvalidArgument ErrorType = "Invalid Argument"
	ErrFailedPrecond   ErrorType = "Failed Precondition"
)

type DomainError struct {
	ErrorType  ErrorType
	Entity     string
	Message    string
	WrappedErr error
}

func NewError(errType ErrorType, entity, msg string) *DomainError {
	return &DomainError{
		ErrorType:  errType,
		Entity:     entity,
		Message:    msg,
		WrappedErr: nil,
	}
}

func InvalidArgument(entity, msg string) *DomainError {
	return NewError(ErrInvalidArgument, entity, msg)
}

func NotFound(entity, msg string) *DomainError {
	return NewError(ErrNotFound, entity, msg)
}

func AlreadyExists(entity, msg string) *DomainError {
	return NewError(ErrAlreadyExists, entity, msg)
}

func FailedPrecondition(entity, msg string) *DomainError {
	return NewError(ErrFailedPrecond, entity, msg)
}

func InternalError(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// Wrap keeps err reachable through Unwrap while presenting the given
// entity and message. The wrapped error's type is preserved when it is
// itself a DomainError.
func Wrap(entity, msg string, err error) *DomainError {
	errType := ErrInternalError
	var de *DomainError
	if errors.As(err, &de) {
		errType = de.ErrorType
	}
	return &DomainError{
		ErrorType:  errType,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

func (e *DomainError) Error() string {
	if e.WrappedErr != nil {
		return fmt.Sprintf("%v for entity %v: %v: %v",
			e.ErrorType.String(), e.Entity, e.Message, e.WrappedErr)
	}
	return fmt.Sprintf("%v for entity %v: %v",
		e.ErrorType.String(), e.Entity, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}
