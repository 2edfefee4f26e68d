package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
)

var errNoSprite = errors.New("no sprite configured")

// loadSprite decodes a BMP or PNG robot image from path.
func loadSprite(path string) (image.Image, error) {
	if path == "" {
		return nil, errNoSprite
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sprite: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding sprite %q: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("sprite %q (%s) is empty", path, format)
	}
	return img, nil
}

// placeholderSprite draws a red body with a dark nose band marking the front
// edge, which faces up at 0 degrees.
func placeholderSprite(w, h int) image.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	body := color.RGBA{R: 0xFF, A: 0xFF}
	nose := color.RGBA{R: 0x60, A: 0xFF}
	noseDepth := h / 5
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y < noseDepth && x >= w/4 && x < w-w/4 {
				img.SetRGBA(x, y, nose)
				continue
			}
			img.SetRGBA(x, y, body)
		}
	}
	return img
}
