package core

import "fmt"

// Error carries a stable Code that callers match on with errors.Is, a
// fixed Message and, when wrapped, the Cause with the offending detail.
type Error struct {
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by code, so a wrapped error still matches its base.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

// WrapError returns a copy of base with cause attached. base itself is
// left untouched, so the predefined values stay reusable.
func WrapError(base *Error, cause error) *Error {
	return &Error{
		Code:    base.Code,
		Message: base.Message,
		Cause:   cause,
	}
}

// Construction errors.
var (
	ErrInvalidWindow         = &Error{Code: "INVALID_WINDOW", Message: "window must be at least 2"}
	ErrInvalidAlpha          = &Error{Code: "INVALID_ALPHA", Message: "alpha must be in (0, 1]"}
	ErrUnsupportedWindowType = &Error{Code: "UNSUPPORTED_WINDOW_TYPE", Message: "unsupported window type"}
	ErrUnknownIndicator      = &Error{Code: "UNKNOWN_INDICATOR", Message: "unknown indicator kind"}
)

// Config errors.
var (
	ErrConfigInvalid = &Error{Code: "CONFIG_INVALID", Message: "configuration invalid"}
	ErrConfigMissing = &Error{Code: "CONFIG_MISSING", Message: "required configuration missing"}
)
