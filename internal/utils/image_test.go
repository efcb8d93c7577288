package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestPreprocessImage(t *testing.T) {
	data := encodePNG(t, 64, 48, color.RGBA{R: 255, G: 0, B: 0, A: 255})

	pixels, err := PreprocessImage(data, 224)
	if err != nil {
		t.Fatalf("PreprocessImage failed: %v", err)
	}

	if len(pixels) != 224 {
		t.Fatalf("Expected 224 rows, got %d", len(pixels))
	}
	if len(pixels[0]) != 224 {
		t.Fatalf("Expected 224 columns, got %d", len(pixels[0]))
	}
	if len(pixels[0][0]) != 3 {
		t.Fatalf("Expected 3 channels, got %d", len(pixels[0][0]))
	}

	// Solid red image: R near 1, G and B near 0, everything in [0, 1]
	px := pixels[112][112]
	if px[0] < 0.95 {
		t.Errorf("Expected red channel near 1.0, got %f", px[0])
	}
	if px[1] > 0.05 || px[2] > 0.05 {
		t.Errorf("Expected green/blue channels near 0, got %f / %f", px[1], px[2])
	}
	for _, ch := range px {
		if ch < 0 || ch > 1 {
			t.Errorf("Expected normalized channel in [0,1], got %f", ch)
		}
	}
}

func TestPreprocessImage_InvalidData(t *testing.T) {
	if _, err := PreprocessImage([]byte("not an image"), 224); err == nil {
		t.Error("Expected decode error for invalid image data")
	}
}
