package imagegen

import (
	"encoding/base64"
	"fmt"
	"os"
)

// placeholderPNG is a valid 1x1 PNG written whenever external generation
// cannot produce an image. Downstream consumers always find a decodable
// artifact at the target path.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mP8/x8AAwMCAO+ip1sAAAAASUVORK5CYII="

func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image artifact: %w", err)
	}
	return nil
}

// WritePlaceholder writes the fallback PNG at path. A failure here is an
// artifact write failure, which is fatal to the run.
func WritePlaceholder(path string) error {
	data, err := base64.StdEncoding.DecodeString(placeholderPNG)
	if err != nil {
		return fmt.Errorf("failed to decode placeholder image: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write placeholder image: %w", err)
	}
	return nil
}
