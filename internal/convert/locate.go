// Package convert turns DOCX files into PDF using a local LibreOffice
// installation.
package convert

import (
	"os"
	"os/exec"
	"runtime"
)

// sofficeCandidates returns known install locations for the soffice
// binary on the current platform, checked before falling back to PATH.
func sofficeCandidates() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/Applications/LibreOffice.app/Contents/MacOS/soffice",
		}
	case "windows":
		return []string{
			`C:\Program Files\LibreOffice\program\soffice.exe`,
			`C:\Program Files (x86)\LibreOffice\program\soffice.exe`,
		}
	default:
		return []string{
			"/usr/bin/soffice",
			"/usr/local/bin/soffice",
			"/opt/libreoffice/program/soffice",
			"/snap/bin/libreoffice",
		}
	}
}

// LocateSoffice finds the LibreOffice binary. Known install paths are
// tried first, then PATH lookup for soffice and libreoffice.
func LocateSoffice() (string, error) {
	for _, candidate := range sofficeCandidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	for _, name := range []string{"soffice", "libreoffice"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", &NotFoundError{
		Message: "install LibreOffice or add soffice to PATH to enable PDF conversion",
	}
}
