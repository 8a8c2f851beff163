// Package imagegen calls the external image-generation service with a
// deterministic local fallback on every failure branch. The contract is
// artifact-level: after Generate returns, a decodable image exists at the
// target path regardless of outcome, and callers branch only on the
// reported mode.
package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/jeffschram/iamfranz/internal/types"
)

// DefaultEndpoint is the image-generation service endpoint.
const DefaultEndpoint = "https://api.openai.com/v1/images/generations"

// DefaultModel is the image model requested when none is configured.
const DefaultModel = "gpt-image-1"

// DefaultSize is the fixed output size requested from the service.
const DefaultSize = "1024x1024"

// maxErrorExcerpt truncates service error bodies recorded in results.
const maxErrorExcerpt = 400

// Generator issues generation requests against the image service.
type Generator struct {
	APIKey   string
	Endpoint string
	Size     string
	Client   *http.Client
}

// New returns a Generator with default endpoint, size, and HTTP client.
// An empty apiKey is valid: every Generate call then writes the placeholder
// and reports ModeFallbackNoCredential.
func New(apiKey string) *Generator {
	return &Generator{
		APIKey:   apiKey,
		Endpoint: DefaultEndpoint,
		Size:     DefaultSize,
		Client:   &http.Client{Timeout: 120 * time.Second},
	}
}

type generationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type generationResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

// Generate requests one image and writes it to destPath. On any failure a
// placeholder is written instead and the mode records why. The returned
// error is non-nil only when the artifact itself could not be written,
// which is fatal to the run.
func (g *Generator) Generate(ctx context.Context, prompt, destPath, model string) (types.ImageResult, error) {
	if model == "" {
		model = DefaultModel
	}

	if g.APIKey == "" {
		if err := WritePlaceholder(destPath); err != nil {
			return types.ImageResult{}, err
		}
		return types.ImageResult{OK: false, Mode: types.ModeFallbackNoCredential}, nil
	}

	body, err := json.Marshal(generationRequest{Model: model, Prompt: prompt, Size: g.Size})
	if err != nil {
		return g.fallback(destPath, types.ModeFallbackException, model, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(body))
	if err != nil {
		return g.fallback(destPath, types.ModeFallbackException, model, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+g.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return g.fallback(destPath, types.ModeFallbackException, model, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return g.fallback(destPath, types.ModeFallbackException, model, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		return g.fallback(destPath, types.ModeFallbackAPIError, model, string(respBody))
	}

	var parsed generationResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return g.fallback(destPath, types.ModeFallbackInvalidResponse, model, "")
	}
	if len(parsed.Data) == 0 || parsed.Data[0].B64JSON == "" {
		return g.fallback(destPath, types.ModeFallbackInvalidResponse, model, "")
	}

	image, err := base64.StdEncoding.DecodeString(parsed.Data[0].B64JSON)
	if err != nil {
		return g.fallback(destPath, types.ModeFallbackInvalidResponse, model, "")
	}

	if err := writeArtifact(destPath, image); err != nil {
		return types.ImageResult{}, err
	}
	return types.ImageResult{OK: true, Mode: types.ModeExternalSuccess, Model: model}, nil
}

func (g *Generator) fallback(destPath string, mode types.ImageMode, model, detail string) (types.ImageResult, error) {
	if err := WritePlaceholder(destPath); err != nil {
		return types.ImageResult{}, err
	}
	if len(detail) > maxErrorExcerpt {
		detail = detail[:maxErrorExcerpt]
	}
	return types.ImageResult{OK: false, Mode: mode, Model: model, Error: detail}, nil
}
