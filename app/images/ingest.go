// Package images decodes uploaded file parts into the base64 strings
// stored on a post, resizing oversized images down to a target width
// on the way in. Everything happens in memory; no temporary files.
package images

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// MaxPerPost caps the number of file parts accepted per create request.
const MaxPerPost = 10

const jpegQuality = 85

// ErrTooManyImages is returned when a create request carries more
// file parts than MaxPerPost.
var ErrTooManyImages = errors.New("too many images (maximum 10)")

// Processor turns uploaded file parts into storable base64 strings.
type Processor struct {
	maxWidth int
}

// NewProcessor returns a Processor resizing to maxWidth. A zero
// maxWidth disables resizing and stores uploads byte-for-byte.
func NewProcessor(maxWidth int) *Processor {
	return &Processor{maxWidth: maxWidth}
}

// Ingest converts the uploaded parts to base64 strings in upload
// order. A failure on any single part aborts the whole batch.
func (p *Processor) Ingest(files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxPerPost {
		return nil, ErrTooManyImages
	}

	encoded := make([]string, 0, len(files))
	for i, fh := range files {
		s, err := p.ingestOne(fh)
		if err != nil {
			return nil, fmt.Errorf("image %d (%s): %w", i+1, fh.Filename, err)
		}
		encoded = append(encoded, s)
	}
	return encoded, nil
}

func (p *Processor) ingestOne(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(src); err != nil {
		return "", err
	}
	raw := buf.Bytes()

	if p.maxWidth > 0 {
		resized, err := p.resize(raw)
		if err != nil {
			return "", err
		}
		raw = resized
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// resize decodes the image and scales it down to the target width,
// preserving aspect ratio. Images already narrow enough pass through
// unmodified.
func (p *Processor) resize(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= p.maxWidth {
		return raw, nil
	}

	scale := float64(p.maxWidth) / float64(w)
	newH := int(float64(h) * scale)
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.maxWidth, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode failed: %w", err)
	}
	return out.Bytes(), nil
}
