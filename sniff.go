package docbuild

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

type imageKind int

const (
	imagePNG imageKind = iota
	imageJPEG
	imageGIF
	imageWEBP
)

func (k imageKind) extension() string {
	switch k {
	case imageJPEG:
		return "jpeg"
	case imageGIF:
		return "gif"
	case imageWEBP:
		return "webp"
	default:
		return "png"
	}
}

func (k imageKind) mimeType() string {
	switch k {
	case imageJPEG:
		return "image/jpeg"
	case imageGIF:
		return "image/gif"
	case imageWEBP:
		return "image/webp"
	default:
		return "image/png"
	}
}

// sniffImageKind inspects magic bytes: PNG 89 50 4E 47, JPEG FF D8, GIF
// 47 49 46, WEBP a RIFF container whose format tag is WEBP. Unrecognized or
// too-short input defaults to PNG; callers get no error for the default, so
// very small inputs can be silently misclassified.
func sniffImageKind(data []byte) imageKind {
	switch {
	case len(data) >= 4 && data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return imagePNG
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xD8:
		return imageJPEG
	case len(data) >= 3 && data[0] == 0x47 && data[1] == 0x49 && data[2] == 0x46:
		return imageGIF
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return imageWEBP
	default:
		return imagePNG
	}
}

// probeDPI is the density assumed when deriving display inches from pixel
// dimensions.
const probeDPI = 96

// probeImageInches decodes the image header to recover intrinsic pixel
// dimensions and converts them to inches at 96 DPI. It reports false when
// no registered decoder recognizes the bytes.
func probeImageInches(data []byte) (widthIn, heightIn float64, ok bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, false
	}
	return float64(cfg.Width) / probeDPI, float64(cfg.Height) / probeDPI, true
}
