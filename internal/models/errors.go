package models

import (
	"fmt"
	"strings"
)

// APIError represents a standardized error response format for the API.
type APIError struct {
	Code    string      `json:"code"`              // Application-specific error code (e.g., "UNAUTHORIZED")
	Message string      `json:"message"`           // Human-readable message describing the error
	Details interface{} `json:"details,omitempty"` // Optional field for additional error details
}

// Predefined application-specific error codes
const (
	ErrorCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrorCodeServiceUnavailable  = "SERVICE_UNAVAILABLE"
	ErrorCodeUnauthorized        = "UNAUTHORIZED"
	ErrorCodeInvalidJSON         = "INVALID_JSON"
)

// FetchError indicates the source sheet could not be read: unreachable API,
// credential failure, or a missing spreadsheet/tab. The destination table is
// never touched on a fetch failure.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch sheet data: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SchemaMismatchError indicates the sheet's header row does not map onto the
// destination column set. Extra and missing columns are both errors, never
// silently dropped. This is a configuration problem requiring manual
// correction; the sync aborts before any write.
type SchemaMismatchError struct {
	Missing []string
	Extra   []string
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected columns: %s", strings.Join(e.Extra, ", ")))
	}
	return "sheet header does not match destination schema: " + strings.Join(parts, "; ")
}

// WriteError indicates the destination transaction failed and was rolled
// back. The table is left at its prior consistent state.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write destination table: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
