package convert

import "fmt"

// NotFoundError indicates that no LibreOffice installation could be
// located on the system.
type NotFoundError struct {
	Message string
	Cause   error
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LibreOffice not found: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("LibreOffice not found: %s", e.Message)
}

func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// ConversionError represents a failed DOCX to PDF conversion.
type ConversionError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF conversion failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF conversion failed: %s", e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}
