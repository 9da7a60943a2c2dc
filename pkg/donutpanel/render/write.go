package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to path and returns the written size in bytes.
func WritePNG(path string, img image.Image) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create output: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to close output: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
