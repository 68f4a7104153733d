package backoffice

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
)

// allowedImageTypes are the upload content types the site accepts.
var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// ImageDataURL reads an uploaded image and returns it as a base64 data
// URL, ready to be stored inline on the owning record. The content type
// is sniffed from the bytes, not trusted from the file name. On error
// nothing is stored anywhere: the caller's record is untouched.
func ImageDataURL(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("upload failed: empty file")
	}
	contentType := http.DetectContentType(raw)
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("unsupported image type %q, want png, jpeg or webp", contentType)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
