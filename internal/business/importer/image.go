package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

var imageTypes = map[string]struct {
	mime  string
	magic []byte
}{
	".jpg":  {"image/jpeg", []byte{0xFF, 0xD8, 0xFF}},
	".jpeg": {"image/jpeg", []byte{0xFF, 0xD8, 0xFF}},
	".png":  {"image/png", []byte{0x89, 'P', 'N', 'G'}},
	".gif":  {"image/gif", []byte("GIF8")},
	".webp": {"image/webp", []byte("RIFF")},
}

// validateImage checks size, extension and file signature and returns the
// mime type to send along.
func validateImage(filename string, data []byte, maxSize int64) (string, error) {
	if int64(len(data)) > maxSize {
		return "", fmt.Errorf("image exceeds %d bytes", maxSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	t, ok := imageTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	if !bytes.HasPrefix(data, t.magic) {
		return "", fmt.Errorf("file content does not match %s", t.mime)
	}

	return t.mime, nil
}
