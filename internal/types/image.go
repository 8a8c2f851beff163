package types

// ImageMode is the closed set of outcomes an image generation attempt can
// report. Callers branch on the mode, never on an error: the generation
// client always leaves a usable artifact at the target path.
type ImageMode string

// Image generation outcome modes.
const (
	ModeExternalSuccess         ImageMode = "external-success"
	ModeFallbackNoCredential    ImageMode = "fallback-no-credential"
	ModeFallbackAPIError        ImageMode = "fallback-api-error"
	ModeFallbackInvalidResponse ImageMode = "fallback-invalid-response"
	ModeFallbackException       ImageMode = "fallback-exception"
	ModeSkipped                 ImageMode = "skipped"
)

// IsFallback reports whether the mode indicates a placeholder artifact was
// written in place of an external generation result.
func (m ImageMode) IsFallback() bool {
	switch m {
	case ModeFallbackNoCredential, ModeFallbackAPIError, ModeFallbackInvalidResponse, ModeFallbackException:
		return true
	}
	return false
}

// ImageResult records the outcome of one generation attempt.
// Written once per iteration, immutable thereafter.
type ImageResult struct {
	OK    bool      `json:"ok"`
	Mode  ImageMode `json:"mode"`
	Model string    `json:"model,omitempty"`
	Error string    `json:"error,omitempty"`
}
