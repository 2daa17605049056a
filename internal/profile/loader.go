// Package profile loads and validates the candidate profile JSON file.
package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/ats-resume-builder/internal/types"
)

//go:embed schema.json
var profileSchema string

// LoadError represents a failure to load or validate the profile file.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile load failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile load failed: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Load reads the profile JSON file at path, validates it against the
// embedded schema and the struct validation tags, and returns the
// parsed profile.
func Load(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return Parse(data)
}

// Parse validates raw profile JSON and returns the parsed profile.
func Parse(data []byte) (*types.CandidateProfile, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var p types.CandidateProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &LoadError{Message: "failed to parse profile JSON", Cause: err}
	}

	if err := p.Validate(); err != nil {
		return nil, &LoadError{Message: "profile validation failed", Cause: err}
	}

	return &p, nil
}

// validateSchema checks the raw JSON against the embedded JSON Schema so
// structural problems are reported with field paths before unmarshaling.
func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(profileSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Message: "schema validation could not run", Cause: err}
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return &LoadError{Message: "profile does not match schema: " + strings.Join(problems, "; ")}
	}

	return nil
}
