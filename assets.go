package firstx

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
)

var (
	boldFaceSource    *ebt.GoTextFaceSource
	regularFaceSource *ebt.GoTextFaceSource
	monoFaceSource    *ebt.GoTextFaceSource
)

// used by the debug overlay
var ClearFace *ebt.GoTextFace

var WhiteImage *eb.Image

// ContactQRImage encodes a mailto link to ContactEmail.
var ContactQRImage *eb.Image

const qrImageSize = 256

func BoldFace(size float64) *ebt.GoTextFace {
	return &ebt.GoTextFace{Source: boldFaceSource, Size: size}
}

func RegularFace(size float64) *ebt.GoTextFace {
	return &ebt.GoTextFace{Source: regularFaceSource, Size: size}
}

func MonoFace(size float64) *ebt.GoTextFace {
	return &ebt.GoTextFace{Source: monoFaceSource, Size: size}
}

func LoadAssets() error {
	timer := NewProfTimer("LoadAssets")
	defer timer.Report()

	{
		whiteImg := image.NewNRGBA(RectWH(3, 3))
		for x := range 3 {
			for y := range 3 {
				whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
		wholeWhiteImage := eb.NewImageFromImage(whiteImg)
		WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
	}

	var qrImage image.Image

	g := new(errgroup.Group)

	loadFont := func(dst **ebt.GoTextFaceSource, name string, ttf []byte) {
		g.Go(func() error {
			src, err := ebt.NewGoTextFaceSource(bytes.NewReader(ttf))
			if err != nil {
				return fmt.Errorf("failed to load font %s: %w", name, err)
			}
			*dst = src
			return nil
		})
	}

	loadFont(&boldFaceSource, "gobold", gobold.TTF)
	loadFont(&regularFaceSource, "goregular", goregular.TTF)
	loadFont(&monoFaceSource, "gomono", gomono.TTF)

	g.Go(func() error {
		img, err := ContactQRCode(ContactEmail, qrImageSize)
		if err != nil {
			return err
		}
		qrImage = img
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	ClearFace = MonoFace(64)
	ContactQRImage = eb.NewImageFromImage(qrImage)

	return nil
}

// ContactQRCode renders a QR code for a mailto link in the page palette.
func ContactQRCode(email string, size int) (image.Image, error) {
	q, err := qrcode.New("mailto:"+email, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode contact qr code: %w", err)
	}

	q.DisableBorder = true
	q.ForegroundColor = Palette[ColorText]
	q.BackgroundColor = color.NRGBA{0, 0, 0, 0}

	return q.Image(size), nil
}
