package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound               = errors.New("resource not found")
	ErrFileTooLarge           = errors.New("file exceeds maximum allowed size")
	ErrUnreadableSpreadsheet  = errors.New("spreadsheet could not be read")
	ErrDuplicateDocument      = errors.New("an employee with this document already exists")
	ErrInvalidCategoryValue   = errors.New("categorical field holds no concrete value")
	ErrDocumentImmutable      = errors.New("employee document cannot change")
	ErrIndexLoadFailed        = errors.New("loading existing employees failed")
	ErrInvalidPreviewData     = errors.New("preview data is invalid")
	ErrEmployeeNotFound       = fmt.Errorf("employee: %w", ErrNotFound)
	ErrInvalidPaginationRange = errors.New("invalid pagination range")
)

// EmptyInputError reports a spreadsheet that has nothing to import.
type EmptyInputError struct {
	Reason string
}

func (e *EmptyInputError) Error() string {
	return "spreadsheet is empty: " + e.Reason
}

// MissingHeadersError lists expected headers absent from the header row.
type MissingHeadersError struct {
	Headers []string
}

func (e *MissingHeadersError) Error() string {
	return "missing required headers: " + strings.Join(e.Headers, ", ")
}

// MissingFieldError is a required cell that is blank after trimming.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// InvalidDateError is a cell that no accepted date layout could parse.
type InvalidDateError struct {
	Field string
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: invalid date %q", e.Field, e.Value)
}

// InvalidNumberError is a cell that is not a usable decimal amount.
type InvalidNumberError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidNumberError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: invalid number %q (%s)", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: invalid number %q", e.Field, e.Value)
}

// InvalidEmailError is a cell that is not a well-formed email address.
type InvalidEmailError struct {
	Field string
	Value string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("%s: invalid email %q", e.Field, e.Value)
}

// InvalidCategoryError is a cell that matched no alias of its category.
type InvalidCategoryError struct {
	Category string
	Value    string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Category, e.Value)
}

// MissingColumnsError is a row that lacks expected headers entirely.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "row is missing columns: " + strings.Join(e.Columns, ", ")
}

// ValidationError carries every field problem of a manually submitted
// employee, in column order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid employee: " + strings.Join(e.Errors, "; ")
}
