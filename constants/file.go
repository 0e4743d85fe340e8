package constants

import (
	"bytes"
	"strings"
)

// AllowedExtensions holds the default allowed file extensions for page capture.
var AllowedExtensions = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
)

// SniffImageFormat inspects magic bytes and returns "JPEG", "PNG", or ""
// for anything else. PDF assembly accepts only these two encodings.
func SniffImageFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, jpegMagic):
		return "JPEG"
	case bytes.HasPrefix(data, pngMagic):
		return "PNG"
	default:
		return ""
	}
}
