package errors

import "fmt"

// ErrorCode represents a spectra error code.
type ErrorCode string

const (
	ErrOutOfRange        ErrorCode = "OUT_OF_RANGE"        // 400
	ErrInvalidCoordinate ErrorCode = "INVALID_COORDINATE"  // 400
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"     // 400
	ErrNotFound          ErrorCode = "NOT_FOUND"           // 404
	ErrDuplicateID       ErrorCode = "DUPLICATE_ID"        // 409
	ErrEmptyCollection   ErrorCode = "EMPTY_COLLECTION"    // 422
	ErrCorruptData       ErrorCode = "CORRUPT_DATA"        // 500
	ErrPersistenceFailed ErrorCode = "PERSISTENCE_FAILED"  // 500
	ErrInternal          ErrorCode = "INTERNAL"            // 500
)

// SpectraError represents a structured error with code, status, and details.
type SpectraError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SpectraError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewOutOfRange creates a 400 error for a score outside its configured bounds.
func NewOutOfRange(field string, value, min, max float64) *SpectraError {
	return &SpectraError{
		Code:    ErrOutOfRange,
		Status:  400,
		Message: fmt.Sprintf("%s = %g is outside the allowed range [%g, %g]", field, value, min, max),
		Details: map[string]any{"field": field, "value": value, "min": min, "max": max},
	}
}

// NewInvalidCoordinate creates a 400 error for an out-of-bounds or non-finite coordinate.
func NewInvalidCoordinate(field string, value float64) *SpectraError {
	return &SpectraError{
		Code:    ErrInvalidCoordinate,
		Status:  400,
		Message: fmt.Sprintf("%s = %g is not a valid geographic coordinate", field, value),
		Details: map[string]any{"field": field, "value": value},
	}
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *SpectraError {
	return &SpectraError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for when an observation cannot be found.
func NewNotFound(id string) *SpectraError {
	return &SpectraError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("observation not found: %s", id),
		Details: map[string]any{"id": id},
	}
}

// NewDuplicateID creates a 409 error for an id collision in the active collection.
func NewDuplicateID(id string) *SpectraError {
	return &SpectraError{
		Code:    ErrDuplicateID,
		Status:  409,
		Message: fmt.Sprintf("observation with id %q already exists", id),
		Details: map[string]any{"id": id},
	}
}

// NewEmptyCollection creates a 422 error for aggregation over zero records.
func NewEmptyCollection() *SpectraError {
	return &SpectraError{
		Code:    ErrEmptyCollection,
		Status:  422,
		Message: "cannot aggregate over an empty collection; record observations first",
	}
}

// NewCorruptData creates a 500 error for stored rows that fail validation on load.
// The row number is 1-based and counts data rows, not the header.
func NewCorruptData(row int, cause error) *SpectraError {
	msg := "corrupt row"
	if cause != nil {
		msg = cause.Error()
	}
	return &SpectraError{
		Code:    ErrCorruptData,
		Status:  500,
		Message: fmt.Sprintf("stored data failed validation at row %d: %s", row, msg),
		Details: map[string]any{"row": row},
	}
}

// NewPersistenceFailed creates a 500 error for a failed durability write.
func NewPersistenceFailed(cause error) *SpectraError {
	msg := "persistence write failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &SpectraError{
		Code:    ErrPersistenceFailed,
		Status:  500,
		Message: msg,
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *SpectraError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &SpectraError{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is a SpectraError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*SpectraError); ok {
		return sErr.Code == code
	}
	return false
}
