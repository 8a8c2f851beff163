package llm

// Provider identifies an LLM provider.
type Provider string

// Supported providers.
const ProviderGemini Provider = "gemini"

// ModelTier selects a model by capability/cost tier rather than by name.
type ModelTier string

// Model tiers.
const (
	// TierLite is for short, low-stakes generations like the curator note.
	TierLite ModelTier = "lite"
	// TierStandard is for longer narrative output.
	TierStandard ModelTier = "standard"
)

// Config maps tiers to provider model names.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the Gemini configuration used by the pipeline.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.0-flash-lite",
			TierStandard: "gemini-2.0-flash",
		},
	}
}

// GetModel returns the model name configured for a tier.
func (c *Config) GetModel(tier ModelTier) string {
	if c == nil || c.Models == nil {
		return ""
	}
	return c.Models[tier]
}
