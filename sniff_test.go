package docbuild

import "testing"

func TestSniffImageKind(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want imageKind
	}{
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, imagePNG},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, imageJPEG},
		{"gif", []byte("GIF89a"), imageGIF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBP"), imageWEBP},
		{"riff but not webp", []byte("RIFF\x00\x00\x00\x00WAVE"), imagePNG},
		{"unknown defaults to png", []byte("garbage"), imagePNG},
		{"empty defaults to png", nil, imagePNG},
	}
	for _, tc := range tests {
		if got := sniffImageKind(tc.data); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestImageKindNames(t *testing.T) {
	if imageJPEG.extension() != "jpeg" || imageJPEG.mimeType() != "image/jpeg" {
		t.Fatal("jpeg names wrong")
	}
	if imagePNG.extension() != "png" || imagePNG.mimeType() != "image/png" {
		t.Fatal("png names wrong")
	}
}

func TestProbeImageInches(t *testing.T) {
	w, h, ok := probeImageInches(testPNG(t, 192, 96))
	if !ok {
		t.Fatal("probe failed")
	}
	if w != 2.0 || h != 1.0 {
		t.Fatalf("probed %gx%g inches", w, h)
	}
	if _, _, ok := probeImageInches([]byte("junk")); ok {
		t.Fatal("probe accepted junk")
	}
}
