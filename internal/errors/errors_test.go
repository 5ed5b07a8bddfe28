package errors

import (
	"fmt"
	"testing"
)

func TestSpectraError_Error(t *testing.T) {
	err := &SpectraError{
		Code:    ErrNotFound,
		Status:  404,
		Message: "observation not found",
	}

	expected := "NOT_FOUND: observation not found"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestNewOutOfRange(t *testing.T) {
	err := NewOutOfRange("hard_authenticity", 62, -50, 50)

	if err.Code != ErrOutOfRange {
		t.Errorf("Code = %q, want %q", err.Code, ErrOutOfRange)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Details["field"] != "hard_authenticity" {
		t.Errorf("Details[field] = %v, want %q", err.Details["field"], "hard_authenticity")
	}
	if err.Details["value"] != 62.0 {
		t.Errorf("Details[value] = %v, want 62", err.Details["value"])
	}
}

func TestNewInvalidCoordinate(t *testing.T) {
	err := NewInvalidCoordinate("latitude", 91)

	if err.Code != ErrInvalidCoordinate {
		t.Errorf("Code = %q, want %q", err.Code, ErrInvalidCoordinate)
	}
	if err.Status != 400 {
		t.Errorf("Status = %d, want 400", err.Status)
	}
	if err.Details["field"] != "latitude" {
		t.Errorf("Details[field] = %v, want %q", err.Details["field"], "latitude")
	}
}

func TestNewNotFound(t *testing.T) {
	err := NewNotFound("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	if err.Code != ErrNotFound {
		t.Errorf("Code = %q, want %q", err.Code, ErrNotFound)
	}
	if err.Status != 404 {
		t.Errorf("Status = %d, want 404", err.Status)
	}
	if err.Details["id"] != "01ARZ3NDEKTSV4RRFFQ69G5FAV" {
		t.Errorf("Details[id] = %v", err.Details["id"])
	}
}

func TestNewDuplicateID(t *testing.T) {
	err := NewDuplicateID("01ARZ3NDEKTSV4RRFFQ69G5FAV")

	if err.Code != ErrDuplicateID {
		t.Errorf("Code = %q, want %q", err.Code, ErrDuplicateID)
	}
	if err.Status != 409 {
		t.Errorf("Status = %d, want 409", err.Status)
	}
}

func TestNewEmptyCollection(t *testing.T) {
	err := NewEmptyCollection()

	if err.Code != ErrEmptyCollection {
		t.Errorf("Code = %q, want %q", err.Code, ErrEmptyCollection)
	}
	if err.Status != 422 {
		t.Errorf("Status = %d, want 422", err.Status)
	}
}

func TestNewCorruptData(t *testing.T) {
	err := NewCorruptData(3, fmt.Errorf("hard_emotion = 99 is outside the allowed range"))

	if err.Code != ErrCorruptData {
		t.Errorf("Code = %q, want %q", err.Code, ErrCorruptData)
	}
	if err.Details["row"] != 3 {
		t.Errorf("Details[row] = %v, want 3", err.Details["row"])
	}
}

func TestNewCorruptData_NilCause(t *testing.T) {
	err := NewCorruptData(1, nil)

	if err.Message == "" {
		t.Error("Message should not be empty for nil cause")
	}
}

func TestNewPersistenceFailed(t *testing.T) {
	err := NewPersistenceFailed(fmt.Errorf("disk full"))

	if err.Code != ErrPersistenceFailed {
		t.Errorf("Code = %q, want %q", err.Code, ErrPersistenceFailed)
	}
	if err.Status != 500 {
		t.Errorf("Status = %d, want 500", err.Status)
	}
	if err.Message != "disk full" {
		t.Errorf("Message = %q, want %q", err.Message, "disk full")
	}
}

func TestNewInternal_NilError(t *testing.T) {
	err := NewInternal(nil)

	if err.Code != ErrInternal {
		t.Errorf("Code = %q, want %q", err.Code, ErrInternal)
	}
	if err.Message != "internal error" {
		t.Errorf("Message = %q, want %q", err.Message, "internal error")
	}
}

func TestIs(t *testing.T) {
	err := NewEmptyCollection()

	if !Is(err, ErrEmptyCollection) {
		t.Error("Is() should return true for matching code")
	}
	if Is(err, ErrNotFound) {
		t.Error("Is() should return false for non-matching code")
	}
	if Is(fmt.Errorf("plain error"), ErrEmptyCollection) {
		t.Error("Is() should return false for non-SpectraError")
	}
}
