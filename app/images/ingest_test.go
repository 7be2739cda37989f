package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// fileHeaders builds multipart file headers the way the HTTP layer
// would hand them to the processor.
func fileHeaders(t *testing.T, payloads ...[]byte) []*multipart.FileHeader {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i, p := range payloads {
		fw, err := w.CreateFormFile("images", fmt.Sprintf("img%d.bin", i))
		require.NoError(t, err)
		_, err = fw.Write(p)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["images"]
}

func pngBytes(t *testing.T, w, h int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestIngest(t *testing.T) {
	t.Run("round-trips bytes when resizing is disabled", func(t *testing.T) {
		p := NewProcessor(0)
		original := []byte("not even an image, stored verbatim")

		encoded, err := p.Ingest(fileHeaders(t, original))
		require.NoError(t, err)
		require.Len(t, encoded, 1)

		decoded, err := base64.StdEncoding.DecodeString(encoded[0])
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})

	t.Run("keeps upload order", func(t *testing.T) {
		p := NewProcessor(0)
		first := []byte("first")
		second := []byte("second")

		encoded, err := p.Ingest(fileHeaders(t, first, second))
		require.NoError(t, err)
		require.Len(t, encoded, 2)
		require.Equal(t, base64.StdEncoding.EncodeToString(first), encoded[0])
		require.Equal(t, base64.StdEncoding.EncodeToString(second), encoded[1])
	})

	t.Run("rejects more than ten files", func(t *testing.T) {
		p := NewProcessor(0)
		payloads := make([][]byte, 11)
		for i := range payloads {
			payloads[i] = []byte{byte(i)}
		}

		_, err := p.Ingest(fileHeaders(t, payloads...))
		require.ErrorIs(t, err, ErrTooManyImages)
	})

	t.Run("accepts exactly ten files", func(t *testing.T) {
		p := NewProcessor(0)
		payloads := make([][]byte, 10)
		for i := range payloads {
			payloads[i] = []byte{byte(i)}
		}

		encoded, err := p.Ingest(fileHeaders(t, payloads...))
		require.NoError(t, err)
		require.Len(t, encoded, 10)
	})

	t.Run("resizes wide images down to the target width", func(t *testing.T) {
		p := NewProcessor(800)

		encoded, err := p.Ingest(fileHeaders(t, pngBytes(t, 1600, 1000)))
		require.NoError(t, err)
		require.Len(t, encoded, 1)

		decoded, err := base64.StdEncoding.DecodeString(encoded[0])
		require.NoError(t, err)

		img, format, err := image.Decode(bytes.NewReader(decoded))
		require.NoError(t, err)
		require.Equal(t, "jpeg", format)
		require.Equal(t, 800, img.Bounds().Dx())
		require.Equal(t, 500, img.Bounds().Dy())
	})

	t.Run("narrow images pass through unmodified", func(t *testing.T) {
		p := NewProcessor(800)
		original := pngBytes(t, 400, 300)

		encoded, err := p.Ingest(fileHeaders(t, original))
		require.NoError(t, err)

		decoded, err := base64.StdEncoding.DecodeString(encoded[0])
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})

	t.Run("one undecodable file aborts the whole batch", func(t *testing.T) {
		p := NewProcessor(800)

		_, err := p.Ingest(fileHeaders(t, pngBytes(t, 100, 100), []byte("garbage")))
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode failed")
	})

	t.Run("empty upload yields an empty list", func(t *testing.T) {
		p := NewProcessor(800)

		encoded, err := p.Ingest(nil)
		require.NoError(t, err)
		require.NotNil(t, encoded)
		require.Len(t, encoded, 0)
	})
}
