// Package llm provides the text-generation service boundary: a provider
// abstraction with a Gemini implementation. The rest of the pipeline treats
// generation as an opaque call that either returns text or fails.
package llm

// ModelTier represents the capability level requested for a call.
type ModelTier string

const (
	// TierLite is for simple extraction and cleanup tasks.
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction such as job analysis.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long-form drafting such as resume generation.
	TierAdvanced ModelTier = "advanced"
)

// Provider represents a text-generation provider.
type Provider string

const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the provider and per-tier model selection.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to standard
// then lite when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
