package imagery

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
)

// SaveWebP decodes raw PNG/JPEG bytes and writes a WebP file at outPath,
// creating parent directories as needed.
func SaveWebP(raw []byte, outPath string, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create image dir: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	defer f.Close()
	if err := webp.Encode(f, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	bounds := img.Bounds()
	slog.Info("imagery: webp saved",
		"path", outPath,
		"width", bounds.Dx(),
		"height", bounds.Dy(),
		"quality", quality,
	)
	return nil
}
