package misc

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WriteGrayPNG writes pixels as an 8-bit single-channel grayscale PNG of the
// given dimensions. The slice must hold exactly width*height bytes in
// row-major order.
func WriteGrayPNG(fileName string, pixels []byte, width int, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("pixel buffer length %d does not match dimensions %dx%d", len(pixels), width, height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	file, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("unable to create image %s - %s", fileName, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("unable to encode image %s - %s", fileName, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close image %s - %s", fileName, err)
	}

	return nil
}
