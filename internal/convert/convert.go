package convert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ConversionTimeout is the maximum time to wait for LibreOffice to
// produce a PDF.
const ConversionTimeout = 60 * time.Second

// ToPDF converts a DOCX file to PDF, writing the result to pdfPath.
// LibreOffice is run headless with the DOCX's directory as the output
// directory; the produced file is then renamed to pdfPath. Success is
// judged by the output file existing, since soffice exits zero on some
// failures.
func ToPDF(ctx context.Context, docxPath, pdfPath string) error {
	soffice, err := LocateSoffice()
	if err != nil {
		return err
	}

	absDocx, err := filepath.Abs(docxPath)
	if err != nil {
		return &ConversionError{Message: fmt.Sprintf("failed to resolve path %s", docxPath), Cause: err}
	}
	if _, err := os.Stat(absDocx); err != nil {
		return &ConversionError{Message: fmt.Sprintf("input file %s not readable", absDocx), Cause: err}
	}

	outDir := filepath.Dir(absDocx)

	ctx, cancel := context.WithTimeout(ctx, ConversionTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, soffice, "--headless", "--convert-to", "pdf", "--outdir", outDir, absDocx)
	var output strings.Builder
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()

	produced := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(absDocx), filepath.Ext(absDocx))+".pdf")
	if _, err := os.Stat(produced); err != nil {
		return &ConversionError{
			Message:   "LibreOffice did not produce a PDF",
			LogOutput: output.String(),
			Cause:     runErr,
		}
	}

	if produced != pdfPath {
		if err := os.Rename(produced, pdfPath); err != nil {
			return &ConversionError{Message: fmt.Sprintf("failed to move PDF to %s", pdfPath), Cause: err}
		}
	}

	return nil
}

// Version reports the installed LibreOffice version string, for
// environment diagnostics.
func Version(ctx context.Context) (string, error) {
	soffice, err := LocateSoffice()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, soffice, "--version").Output()
	if err != nil {
		return "", &ConversionError{Message: "failed to query LibreOffice version", Cause: err}
	}
	return strings.TrimSpace(string(out)), nil
}
