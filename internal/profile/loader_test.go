package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileJSON = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "555-0100",
	"summary": "Backend engineer",
	"skills": ["Go", "PostgreSQL"],
	"experience": [
		{
			"company": "Acme Corp",
			"title": "Senior Engineer",
			"start_date": "Jan 2020",
			"end_date": "Dec 2022",
			"bullets": ["Built distributed systems"]
		}
	],
	"education": [
		{
			"institution": "State University",
			"degree": "BSc",
			"field": "Computer Science",
			"graduation_date": "2015"
		}
	]
}`

func TestLoad_ValidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(validProfileJSON), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, p.Skills)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "Acme Corp", p.Experience[0].Company)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "State University", p.Education[0].Institution)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestParse_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"missing name", `{"email": "a@b.com", "skills": ["Go"], "experience": [{"company": "X", "title": "Y"}]}`},
		{"empty skills", `{"name": "Jane", "email": "a@b.com", "skills": [], "experience": [{"company": "X", "title": "Y"}]}`},
		{"no experience", `{"name": "Jane", "email": "a@b.com", "skills": ["Go"], "experience": []}`},
		{"entry missing company", `{"name": "Jane", "email": "a@b.com", "skills": ["Go"], "experience": [{"title": "Y"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.json))
			require.Error(t, err)

			var loadErr *LoadError
			assert.ErrorAs(t, err, &loadErr)
		})
	}
}

func TestParse_UnknownFieldsTolerated(t *testing.T) {
	p, err := Parse([]byte(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"skills": ["Go"],
		"experience": [{"company": "Acme", "title": "Engineer"}],
		"linkedin": "https://linkedin.com/in/janedoe"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", p.Name)
}
