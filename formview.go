package firstx

import (
	"errors"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	formHeading       = "Let's Build Something Amazing"
	formSubmitText    = "Launch My AI Project"
	acknowledgeLength = 6 * time.Second
)

var fieldPlaceholders = [ContactFieldSize]string{
	FieldName:    "Your Name",
	FieldEmail:   "your@email.com",
	FieldMessage: "Tell me about your project...",
}

// FormView draws a ContactForm and routes input into it.
type FormView struct {
	Form *ContactForm

	Fields [ContactFieldSize]*TextField
	Submit *TextButton

	// last submit result shown under the button
	Error string
	Ack   string

	clearAck   func()
	blinkPhase time.Duration
}

func NewFormView(form *ContactForm) *FormView {
	v := new(FormView)
	v.Form = form

	for f := ContactField(0); f < ContactFieldSize; f++ {
		field := NewTextField(fieldPlaceholders[f])
		v.Fields[f] = field

		f := f
		field.OnChange = func(text string) {
			v.Form.Request.SetField(f, text)
			v.Error = ""
		}
	}
	v.Fields[FieldMessage].Multiline = true

	v.Submit = NewTextButton(formSubmitText)

	return v
}

func (v *FormView) HasFocus() bool {
	return v.Focused() >= 0
}

// Focused returns the focused field or -1.
func (v *FormView) Focused() ContactField {
	for f, field := range v.Fields {
		if field.Focused {
			return ContactField(f)
		}
	}
	return -1
}

func (v *FormView) Focus(f ContactField) {
	for i, field := range v.Fields {
		focused := ContactField(i) == f
		if field.Focused != focused {
			field.Focused = focused
			SetRedraw()
		}
	}
}

// Height is how tall the form is when laid out in width.
func (v *FormView) Height(width float64) float64 {
	_, _, _, bottom := v.layout(FRectXYWH(0, 0, width, 0))
	return bottom + 40
}

func (v *FormView) layout(rect FRectangle) (heading FPoint, fields [ContactFieldSize]FRectangle, button FRectangle, bottom float64) {
	const (
		pad       = 32
		fieldH    = 52
		messageH  = 140
		gap       = 16
		headingH  = 56
		buttonH   = 56
		statusGap = 36
	)

	inner := rect.Inset(pad)
	y := rect.Min.Y + pad

	heading = FPt(FRectangleCenter(rect).X, y)
	y += headingH

	// name and email share a row on wide screens
	if inner.Dx() >= 560 {
		half := (inner.Dx() - gap) * 0.5
		fields[FieldName] = FRectXYWH(inner.Min.X, y, half, fieldH)
		fields[FieldEmail] = FRectXYWH(inner.Min.X+half+gap, y, half, fieldH)
		y += fieldH + gap
	} else {
		fields[FieldName] = FRectXYWH(inner.Min.X, y, inner.Dx(), fieldH)
		y += fieldH + gap
		fields[FieldEmail] = FRectXYWH(inner.Min.X, y, inner.Dx(), fieldH)
		y += fieldH + gap
	}

	fields[FieldMessage] = FRectXYWH(inner.Min.X, y, inner.Dx(), messageH)
	y += messageH + gap

	button = FRectXYWH(inner.Min.X, y, inner.Dx(), buttonH)
	y += buttonH + statusGap

	return heading, fields, button, y - rect.Min.Y
}

func (v *FormView) Update(rect FRectangle, timeouts *TimeoutQueue) {
	_, fields, button, _ := v.layout(rect)

	for f, field := range v.Fields {
		field.Rect = fields[f]
	}
	v.Submit.Rect = button

	if IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		clicked := ContactField(-1)
		cursor := CursorFPt()
		for f, field := range v.Fields {
			if cursor.In(field.Rect) {
				clicked = ContactField(f)
			}
		}
		v.Focus(clicked)
	}
	for f, field := range v.Fields {
		if IsTouchJustTapped(field.Rect) {
			v.Focus(ContactField(f))
		}
	}

	if focused := v.Focused(); focused >= 0 {
		if IsKeyJustPressed(NextFieldKey) {
			if IsKeyPressed(eb.KeyShift) {
				v.Focus((focused + ContactFieldSize - 1) % ContactFieldSize)
			} else {
				v.Focus((focused + 1) % ContactFieldSize)
			}
		} else if IsKeyJustPressed(eb.KeyEscape) {
			v.Focus(-1)
		} else {
			v.Fields[focused].Update()
		}

		if phase := GlobalTimerNow() / caretBlinkRate; phase != v.blinkPhase {
			v.blinkPhase = phase
			SetRedraw()
		}
	}

	v.Submit.OnRelease = func() {
		v.submit(timeouts)
	}
	v.Submit.Update()
}

func (v *FormView) submit(timeouts *TimeoutQueue) {
	ack, err := v.Form.Submit()
	if err != nil {
		v.Error = err.Error()

		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			v.Fields[fieldErr.Field].Invalid = true
			v.Focus(fieldErr.Field)
		}

		SetRedraw()
		return
	}

	for _, field := range v.Fields {
		field.Text = ""
		field.Invalid = false
	}
	v.Focus(-1)

	v.Error = ""
	v.Ack = ack.Message

	if v.clearAck != nil {
		v.clearAck()
	}
	v.clearAck = timeouts.SetTimeout(acknowledgeLength, func() {
		v.Ack = ""
		v.clearAck = nil
		SetRedraw()
	})

	SetRedraw()
}

func (v *FormView) Draw(dst *eb.Image, rect FRectangle) {
	heading, _, button, _ := v.layout(rect)

	FillRoundRect(dst, rect, 24, Palette[ColorPanel])
	StrokeRoundRect(dst, rect, 24, 1, Palette[ColorPanelStroke])

	DrawTextAt(dst, formHeading, BoldFace(30), heading.X, heading.Y, Palette[ColorText], ebt.AlignCenter)

	for _, field := range v.Fields {
		field.Draw(dst)
	}

	v.Submit.Draw(dst)

	statusY := button.Max.Y + 10
	if v.Error != "" {
		DrawTextAt(dst, v.Error, RegularFace(15), rect.Min.X+32, statusY, Palette[ColorAccentSoft], ebt.AlignStart)
	} else if v.Ack != "" {
		DrawTextAt(dst, v.Ack, RegularFace(15), FRectangleCenter(rect).X, statusY, Palette[ColorTextMuted], ebt.AlignCenter)
	}
}
