package imagecompress

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

// MaxUploadBytes is the largest file accepted before compression.
const MaxUploadBytes = 10 << 20

// AllowedMediaTypes are the declared types accepted for upload.
var AllowedMediaTypes = []string{"image/jpeg", "image/jpg", "image/png", "image/webp"}

var (
	ErrNoFile          = errors.New("no file selected")
	ErrUnsupportedType = errors.New("unsupported format, use JPEG, PNG or WebP")
	ErrFileTooLarge    = fmt.Errorf("file too large, maximum %dMB", MaxUploadBytes>>20)
)

// Validate is a fast pre-check on the declared type and size of an upload.
// It does not look at the content; Compress does that.
func Validate(mediaType string, size int64) error {
	if mediaType == "" && size <= 0 {
		return ErrNoFile
	}
	if !isAllowed(mediaType) {
		return ErrUnsupportedType
	}
	if size > MaxUploadBytes {
		return ErrFileTooLarge
	}
	return nil
}

// ValidateFile runs Validate against a multipart upload.
func ValidateFile(fh *multipart.FileHeader) error {
	if fh == nil {
		return ErrNoFile
	}
	return Validate(fh.Header.Get("Content-Type"), fh.Size)
}

// ReadFile returns the content and declared media type of an upload.
func ReadFile(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > MaxUploadBytes {
		return nil, "", ErrFileTooLarge
	}
	return data, fh.Header.Get("Content-Type"), nil
}

func isAllowed(mediaType string) bool {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	for _, t := range AllowedMediaTypes {
		if mediaType == t {
			return true
		}
	}
	return false
}
