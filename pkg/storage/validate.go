package storage

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MaxUploadSize is the hard cap for any uploaded document or image.
const MaxUploadSize = 5 << 20 // 5 MiB

// FileKind selects which extension allow-list an upload is checked against.
type FileKind int

const (
	// KindResume accepts pdf and docx documents.
	KindResume FileKind = iota
	// KindImage accepts the common web image formats.
	KindImage
)

// Magic byte signatures per extension; a file must start with one of the
// listed prefixes to be accepted under that extension.
var magicBytes = map[string][][]byte{
	".jpg":  {{0xFF, 0xD8, 0xFF}},
	".jpeg": {{0xFF, 0xD8, 0xFF}},
	".png":  {{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	".gif":  {{0x47, 0x49, 0x46, 0x38, 0x37, 0x61}, {0x47, 0x49, 0x46, 0x38, 0x39, 0x61}}, // GIF87a & GIF89a
	".webp": {{0x52, 0x49, 0x46, 0x46}},                                                   // RIFF header
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                                                   // %PDF
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                                                   // ZIP (PK..)
}

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateUpload checks size, extension allow-list and content signature for
// an upload before it is handed to the blob store. Images additionally must
// decode as a valid image header.
func ValidateUpload(kind FileKind, filename string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("file is empty")
	}
	if len(data) > MaxUploadSize {
		return fmt.Errorf("file exceeds the %d MB limit", MaxUploadSize>>20)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return fmt.Errorf("file has no extension")
	}

	allowed := resumeExtensions
	if kind == KindImage {
		allowed = imageExtensions
	}
	if !allowed[ext] {
		return fmt.Errorf("file extension not allowed: %s", ext)
	}

	if !matchesMagicBytes(ext, data) {
		return fmt.Errorf("file content does not match extension")
	}

	if kind == KindImage {
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return fmt.Errorf("file is not a valid image")
		}
	}

	return nil
}

func matchesMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false
	}
	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}
	return false
}
