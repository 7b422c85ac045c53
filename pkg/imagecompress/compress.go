// Package imagecompress re-encodes uploaded profile photos as JPEG data URIs
// that fit a byte budget.
package imagecompress

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"math"
	"strings"

	// Decoders accepted as input.
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DataURIPrefix precedes the base64 payload of every compressed image.
const DataURIPrefix = "data:image/jpeg;base64,"

const (
	qualityStep    = 10 // 0.1 on the 0..1 scale
	minQuality     = 10
	maxQuality     = 100
	maxSourcePixel = 64 << 20
)

// ErrInvalidInput is returned when the declared media type is not an image.
var ErrInvalidInput = errors.New("file must be an image")

// DecodeError wraps a failure to read the source image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "failed to load image: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// Options are the compression targets. Quality is on the 0..1 scale.
type Options struct {
	MaxWidth  int
	MaxHeight int
	MaxSizeKB int
	Quality   float64
}

// DefaultOptions matches what the setup form uses for profile photos.
func DefaultOptions() Options {
	return Options{MaxWidth: 800, MaxHeight: 800, MaxSizeKB: 800, Quality: 0.8}
}

// Result is a compressed image and how it was produced.
type Result struct {
	DataURI  string
	Width    int
	Height   int
	Quality  float64 // quality of the returned encoding
	SizeKB   float64 // estimated from the base64 length
	Attempts int
}

// Compress decodes data, scales it to fit opts.MaxWidth x opts.MaxHeight and
// encodes it as JPEG, lowering quality in 0.1 steps until the estimated size
// is within opts.MaxSizeKB. Quality never drops below 0.1; at that point the
// current encoding is returned even if it is still over budget.
//
// The bitmap is resampled once; only the encoding is repeated. ctx is checked
// between encodings.
func Compress(ctx context.Context, data []byte, mediaType string, opts Options) (*Result, error) {
	if !strings.HasPrefix(strings.ToLower(mediaType), "image/") {
		return nil, ErrInvalidInput
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > maxSourcePixel {
		return nil, &DecodeError{Err: fmt.Errorf("unsupported dimensions %dx%d", cfg.Width, cfg.Height)}
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	bounds := src.Bounds()
	width, height := TargetDimensions(bounds.Dx(), bounds.Dy(), opts.MaxWidth, opts.MaxHeight)
	canvas := resample(src, width, height)

	quality := qualityPercent(opts.Quality)
	var buf bytes.Buffer
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		buf.Reset()
		if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
		payload := base64.StdEncoding.EncodeToString(buf.Bytes())
		sizeKB := EstimateSizeKB(len(payload))

		if sizeKB <= float64(opts.MaxSizeKB) || quality <= minQuality {
			return &Result{
				DataURI:  DataURIPrefix + payload,
				Width:    width,
				Height:   height,
				Quality:  float64(quality) / 100,
				SizeKB:   sizeKB,
				Attempts: attempt,
			}, nil
		}
		quality -= qualityStep
		if quality < minQuality {
			quality = minQuality
		}
	}
}

// TargetDimensions scales width x height down to fit maxWidth x maxHeight,
// keeping the aspect ratio. The width bound is applied first and the height
// bound second, on the already scaled size. Images are never scaled up.
func TargetDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	w, h := float64(width), float64(height)
	if maxWidth > 0 && w > float64(maxWidth) {
		h = h * float64(maxWidth) / w
		w = float64(maxWidth)
	}
	if maxHeight > 0 && h > float64(maxHeight) {
		w = w * float64(maxHeight) / h
		h = float64(maxHeight)
	}
	return max(1, int(math.Round(w))), max(1, int(math.Round(h)))
}

// EstimateSizeKB approximates the decoded size of a base64 payload in KB.
func EstimateSizeKB(base64Len int) float64 {
	return float64(base64Len) * 0.75 / 1024
}

// DecodeDataURI returns the raw JPEG bytes of a data URI produced by Compress.
func DecodeDataURI(uri string) ([]byte, error) {
	payload, ok := strings.CutPrefix(uri, DataURIPrefix)
	if !ok {
		return nil, ErrInvalidInput
	}
	return base64.StdEncoding.DecodeString(payload)
}

// IsJPEGDataURI reports whether uri is a JPEG data URI with a readable header.
func IsJPEGDataURI(uri string) bool {
	raw, err := DecodeDataURI(uri)
	if err != nil {
		return false
	}
	_, err = jpeg.DecodeConfig(bytes.NewReader(raw))
	return err == nil
}

// resample draws src onto a white width x height canvas. JPEG has no alpha,
// so transparent pixels end up white.
func resample(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if src.Bounds().Dx() == width && src.Bounds().Dy() == height {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func qualityPercent(q float64) int {
	p := int(math.Round(q * 100))
	if p > maxQuality {
		return maxQuality
	}
	if p < minQuality {
		return minQuality
	}
	return p
}
