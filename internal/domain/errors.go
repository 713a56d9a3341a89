package domain

import "fmt"

// EngineError is the unified error type for the compiler core.
// Each error has a numeric code and human-readable message.
type EngineError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("teamforge error %d: %s", e.Code, e.Message)
}

// NewEngineError creates a new EngineError.
func NewEngineError(code int, msg string) *EngineError {
	return &EngineError{Code: code, Message: msg}
}

// WrapEngineError creates an EngineError that includes a cause.
func WrapEngineError(code int, msg string, cause error) *EngineError {
	return &EngineError{Code: code, Message: fmt.Sprintf("%s: %v", msg, cause)}
}

// ---- Catalog / contract errors (-32010 to -32029) ----
//
// These signal caller-side contract breaches, not data-availability gaps:
// a missing answer is never an error, an out-of-range question id always is.

var (
	ErrInvalidQuestionID = &EngineError{Code: -32010, Message: "invalid question id"}
	ErrUnknownLanguage   = &EngineError{Code: -32011, Message: "unknown recommendation language"}
	ErrInvalidStep       = &EngineError{Code: -32012, Message: "step out of range"}
)

// ---- Config errors (-32030 to -32049) ----

var (
	ErrConfigInvalid = &EngineError{Code: -32030, Message: "invalid configuration"}
)

// ---- Bundle / output errors (-32050 to -32069) ----

var (
	ErrBundleWrite = &EngineError{Code: -32050, Message: "failed to write bundle"}
)
