package firstx

import (
	"fmt"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	footerHeight    = 180
	footerQRSize    = 96
	copiedNoticeFor = 2 * time.Second
)

type FooterSection struct {
	Email string

	// when the page was built
	UpdatedAt time.Time

	EmailButton BaseButton
	Copied      bool

	qrImage *eb.Image

	clearCopied func()
}

func NewFooterSection(email string) *FooterSection {
	f := new(FooterSection)
	f.Email = email
	f.UpdatedAt = time.Now()
	return f
}

// Copyright is the footer line for the given time.
func Copyright(updatedAt time.Time) string {
	return fmt.Sprintf(
		"© %d Sayak Majumder. All rights reserved. • Last updated: %s",
		updatedAt.Year(), updatedAt.Format("Jan 2, 2006, 3:04 PM"),
	)
}

func (f *FooterSection) Height(viewport FPoint) float64 {
	return footerHeight
}

func (f *FooterSection) emailRect(rect FRectangle) FRectangle {
	column := ContentColumn(rect)
	face := RegularFace(16)
	w, h := ebt.Measure(f.Email, face, FontLineSpacing(face))
	return FRectXYWH(column.Min.X, rect.Min.Y+90, w, h)
}

func (f *FooterSection) Update(p *Page, rect FRectangle) {
	f.EmailButton.Rect = f.emailRect(rect)
	f.EmailButton.OnRelease = func() {
		ClipboardWriteText(f.Email)
		f.Copied = true
		if f.clearCopied != nil {
			f.clearCopied()
		}
		f.clearCopied = p.Timeouts.SetTimeout(copiedNoticeFor, func() {
			f.Copied = false
			f.clearCopied = nil
			SetRedraw()
		})
		SetRedraw()
	}
	f.EmailButton.Update()
}

// QRImage returns the qr code for Email. The one made at startup is
// reused when the address was not changed by config.
func (f *FooterSection) QRImage() *eb.Image {
	if f.qrImage != nil {
		return f.qrImage
	}
	if f.Email == ContactEmail {
		return ContactQRImage
	}

	img, err := ContactQRCode(f.Email, qrImageSize)
	if err != nil {
		ErrLogger.Printf("%v", err)
		return nil
	}
	f.qrImage = eb.NewImageFromImage(img)
	return f.qrImage
}

func (f *FooterSection) Draw(dst *eb.Image, p *Page, rect FRectangle) {
	FillRect(dst, rect, ColorFade(Palette[ColorPanel], 0.85))
	StrokeLine(dst, rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y, 1, Palette[ColorPanelStroke])

	column := ContentColumn(rect)

	DrawTextAt(dst, Copyright(f.UpdatedAt), RegularFace(15), column.Min.X, rect.Min.Y+48, Palette[ColorTextDim], ebt.AlignStart)

	emailColor := Palette[ColorAccentSoft]
	if f.EmailButton.State != ButtonStateNormal {
		emailColor = Palette[ColorAccent]
	}
	emailRect := f.emailRect(rect)
	DrawTextAt(dst, f.Email, RegularFace(16), emailRect.Min.X, emailRect.Min.Y, emailColor, ebt.AlignStart)

	if f.Copied {
		DrawTextAt(dst, "copied", RegularFace(14), emailRect.Max.X+12, emailRect.Min.Y+2, Palette[ColorTextMuted], ebt.AlignStart)
	}

	if qr := f.QRImage(); qr != nil {
		size := ImageSizeFPt(qr)
		scale := footerQRSize / size.X

		op := &DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(column.Max.X-footerQRSize, rect.Min.Y+(rect.Dy()-footerQRSize)*0.5)
		DrawImage(dst, qr, op)
	}
}
