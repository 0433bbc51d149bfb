package usecase

import (
	"errors"
	"fmt"
)

// 失敗の種類。HTTPステータスへの変換は handler が行う
type ErrorKind string

const (
	KindNotFound              ErrorKind = "NOT_FOUND"
	KindDuplicateResource     ErrorKind = "DUPLICATE_RESOURCE"
	KindUnauthorized          ErrorKind = "UNAUTHORIZED"
	KindAuthenticationFailure ErrorKind = "AUTHENTICATION_FAILURE"
	KindValidationFailure     ErrorKind = "VALIDATION_FAILURE"
	KindUnexpected            ErrorKind = "UNEXPECTED"
)

type Error struct {
	Kind    ErrorKind
	Message string
	// ValidationFailure のときだけ（field -> message）
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// "Product not found with id: '5'"
func NotFound(resource, field string, value interface{}) error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found with %s: '%v'", resource, field, value),
	}
}

// "User already exists with email: 'a@x.com'"
func Duplicate(resource, field string, value interface{}) error {
	return &Error{
		Kind:    KindDuplicateResource,
		Message: fmt.Sprintf("%s already exists with %s: '%v'", resource, field, value),
		Fields:  map[string]string{field: fmt.Sprintf("%v", value)},
	}
}

// 所有者チェックNG（403）
func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// 認証失敗（401）
func AuthenticationFailure(message string) error {
	return &Error{Kind: KindAuthenticationFailure, Message: message}
}

func Validation(fields map[string]string) error {
	return &Error{Kind: KindValidationFailure, Message: "Validation failed", Fields: fields}
}

func InvalidField(field, message string) error {
	return Validation(map[string]string{field: message})
}

// 詳細はErrに残し、クライアントには出さない
func Unexpected(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindUnexpected, Message: "An unexpected error occurred", Err: err}
}

func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func KindOf(err error) ErrorKind {
	if e, ok := AsError(err); ok {
		return e.Kind
	}
	return KindUnexpected
}
