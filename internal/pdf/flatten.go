// Package pdf post-processes generated PDFs: annotation flattening and
// page counting.
package pdf

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// FlattenError represents a failure while post-processing a PDF.
type FlattenError struct {
	Message string
	Cause   error
}

func (e *FlattenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf flatten failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf flatten failed: %s", e.Message)
}

func (e *FlattenError) Unwrap() error {
	return e.Cause
}

// Flatten removes all annotations from the PDF at inPath and writes the
// result to outPath. ATS parsers choke on interactive elements, so the
// output should carry text only.
func Flatten(inPath, outPath string) error {
	if err := api.RemoveAnnotationsFile(inPath, outPath, nil, nil, nil, nil, false); err != nil {
		return &FlattenError{Message: fmt.Sprintf("failed to remove annotations from %s", inPath), Cause: err}
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, &FlattenError{Message: fmt.Sprintf("failed to count pages in %s", path), Cause: err}
	}
	return count, nil
}
