package ocr

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// EnhanceForOCR preprocesses a captured page so the OCR engine sees a
// cleaner document: grayscale, boosted contrast, sharpening, and a
// slight brightness lift. The result is written as a JPEG under
// cacheDir and its path returned; the source file is left untouched.
func EnhanceForOCR(srcPath, cacheDir string) (string, error) {
	src, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 30)
	img = imaging.Sharpen(img, 1.5)
	img = imaging.AdjustBrightness(img, 10)

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache dir: %w", err)
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	out := filepath.Join(cacheDir, fmt.Sprintf("%s-%s.jpg", base, uuid.New().String()[:8]))
	if err := imaging.Save(img, out); err != nil {
		return "", fmt.Errorf("save enhanced image: %w", err)
	}
	return out, nil
}
