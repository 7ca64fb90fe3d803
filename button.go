package firstx

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type ButtonState int

const (
	ButtonStateNormal ButtonState = iota
	ButtonStateHover
	ButtonStateDown
)

type BaseButton struct {
	Rect FRectangle

	Disabled bool

	OnPress   func()
	OnRelease func()

	State ButtonState

	readyToCallOnRelease bool
}

func (b *BaseButton) Update() {
	if b.Disabled {
		b.State = ButtonStateNormal
		b.readyToCallOnRelease = false
		return
	}

	prevState := b.State

	inRect := CursorFPt().In(b.Rect)

	if inRect {
		if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
			b.State = ButtonStateDown
			b.readyToCallOnRelease = true
			if b.OnPress != nil {
				b.OnPress()
			}
		}

		if b.readyToCallOnRelease && IsMouseButtonJustReleased(eb.MouseButtonLeft) {
			if b.OnRelease != nil {
				b.OnRelease()
			}
			b.readyToCallOnRelease = false
		}
	}

	// taps count as a full click
	if IsTouchJustTapped(b.Rect) {
		if b.OnPress != nil {
			b.OnPress()
		}
		if b.OnRelease != nil {
			b.OnRelease()
		}
	}

	if inRect {
		if b.State != ButtonStateDown || !IsMouseButtonPressed(eb.MouseButtonLeft) {
			b.State = ButtonStateHover
		}
	} else {
		b.State = ButtonStateNormal
		b.readyToCallOnRelease = false
	}

	if b.State != prevState {
		SetRedraw()
	}
}

type TextButton struct {
	BaseButton

	Text     string
	FontSize float64
	Radius   float64

	BgColor        color.Color
	BgColorOnHover color.Color
	BgColorOnDown  color.Color

	TextColor color.Color
}

func NewTextButton(text string) *TextButton {
	b := new(TextButton)
	b.Text = text
	b.FontSize = 18
	b.Radius = 12

	b.BgColor = Palette[ColorAccent]
	b.BgColorOnHover = Palette[ColorAccentSoft]
	b.BgColorOnDown = Palette[ColorAccentDeep]

	b.TextColor = Palette[ColorText]

	return b
}

func (b *TextButton) Draw(dst *eb.Image) {
	var bgColor color.Color

	switch b.State {
	case ButtonStateHover:
		bgColor = b.BgColorOnHover
	case ButtonStateDown:
		bgColor = b.BgColorOnDown
	default:
		bgColor = b.BgColor
	}

	if b.Disabled {
		bgColor = ColorFade(bgColor, 0.5)
	}

	FillRoundRect(dst, b.Rect, b.Radius, bgColor)

	if len(b.Text) > 0 {
		face := BoldFace(b.FontSize)
		textW, textH := ebt.Measure(b.Text, face, FontLineSpacing(face))

		// shrink to fit
		scale := min(1, b.Rect.Dx()*0.9/textW, b.Rect.Dy()*0.9/textH)

		op := &DrawTextOptions{}
		op.ColorScale.ScaleWithColor(b.TextColor)

		op.GeoM.Concat(TransformToCenter(textW, textH, scale, scale, 0))
		center := FRectangleCenter(b.Rect)
		op.GeoM.Translate(center.X, center.Y)

		DrawText(dst, b.Text, face, op)
	}
}
