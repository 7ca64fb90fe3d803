package firstx

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// set by screenshot build tag
var ScreenshotEnabled bool

// TakeScreenshot saves img as a png in the working directory
// and returns the file name.
func TakeScreenshot(img *eb.Image) (string, error) {
	timeStr := time.Now().Format("0102150405")

	dirPath, err := os.Getwd()
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("firstx-%s.png", timeStr)
	for counter := 2; ; counter++ {
		if _, err := os.Stat(filepath.Join(dirPath, filename)); os.IsNotExist(err) {
			break
		}
		filename = fmt.Sprintf("firstx-%s-(%d).png", timeStr, counter)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	img.ReadPixels(rgba.Pix)

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, rgba); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dirPath, filename), buffer.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}

	return filename, nil
}
