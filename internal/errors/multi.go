package errors

import (
	"errors"
	"strings"
)

type MultiError struct {
	msg    string
	errors []error
}

func NewMultiError(msg string) *MultiError {
	return &MultiError{
		msg: msg,
	}
}

func (m *MultiError) Append(err error) {
	if err != nil {
		m.errors = append(m.errors, err)
	}
}

// ToErr returns nil when nothing was appended, the MultiError otherwise.
func (m *MultiError) ToErr() error {
	if len(m.errors) == 0 {
		return nil
	}
	return m
}

func MultiToError(err error) error {
	var me *MultiError
	if errors.As(err, &me) {
		return me.ToErr()
	}
	return err
}

func IsEmptyError(err error) bool {
	var me *MultiError
	if errors.As(err, &me) {
		return len(me.errors) == 0
	}
	return false
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(m.msg)
	for _, err := range m.errors {
		sb.WriteString(":\n ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}
