package types

// JobRequirements represents the structured analysis of a job posting
// extracted by the LLM. Field names match the JSON keys the extraction
// prompt requests.
type JobRequirements struct {
	RequiredSkills      []string `json:"required_skills"`
	RequiredExperience  []string `json:"required_experience"`
	KeyResponsibilities []string `json:"key_responsibilities"`
	Keywords            []string `json:"keywords"`
}

// IsEmpty reports whether the extraction produced no usable content.
func (r *JobRequirements) IsEmpty() bool {
	return len(r.RequiredSkills) == 0 &&
		len(r.RequiredExperience) == 0 &&
		len(r.KeyResponsibilities) == 0 &&
		len(r.Keywords) == 0
}
