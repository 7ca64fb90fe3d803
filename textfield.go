package firstx

import (
	"strings"
	"time"
	"unicode/utf8"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

const caretBlinkRate = 530 * time.Millisecond

// TextField is a single or multi line input that only ever edits at its end.
type TextField struct {
	Rect FRectangle

	Text        string
	Placeholder string
	Multiline   bool
	MaxLength   int

	FontSize float64

	Focused bool

	// set when the last submit rejected this field
	Invalid bool

	OnChange func(text string)

	runeBuf []rune
}

func NewTextField(placeholder string) *TextField {
	f := new(TextField)
	f.Placeholder = placeholder
	f.MaxLength = 2000
	f.FontSize = 16
	return f
}

// Update handles typing while focused. It reports whether the text changed.
func (f *TextField) Update() bool {
	if !f.Focused {
		return false
	}

	text := f.Text

	f.runeBuf = eb.AppendInputChars(f.runeBuf[:0])
	for _, r := range f.runeBuf {
		text = f.appendRune(text, r)
	}

	if f.Multiline && IsKeyJustPressed(eb.KeyEnter) {
		text = f.appendRune(text, '\n')
	}

	if HandleKeyRepeat(400*time.Millisecond, 35*time.Millisecond, eb.KeyBackspace) {
		if IsControlPressed() {
			text = trimLastWord(text)
		} else if len(text) > 0 {
			_, size := utf8.DecodeLastRuneInString(text)
			text = text[:len(text)-size]
		}
	}

	if IsControlPressed() {
		if IsKeyJustPressed(PasteKey) {
			for _, r := range ClipboardReadText() {
				text = f.appendRune(text, r)
			}
		}
		if IsKeyJustPressed(CopyKey) && text != "" {
			ClipboardWriteText(text)
		}
	}

	if text == f.Text {
		return false
	}

	f.SetText(text)
	return true
}

func (f *TextField) appendRune(text string, r rune) string {
	if f.MaxLength > 0 && utf8.RuneCountInString(text) >= f.MaxLength {
		return text
	}
	if r == '\r' {
		return text
	}
	if r == '\n' && !f.Multiline {
		return text
	}
	if r != '\n' && r < ' ' {
		return text
	}
	return text + string(r)
}

func trimLastWord(text string) string {
	text = strings.TrimRight(text, " \n\t")
	if i := strings.LastIndexAny(text, " \n\t"); i >= 0 {
		return text[:i+1]
	}
	return ""
}

func (f *TextField) SetText(text string) {
	if f.Text == text {
		return
	}
	f.Text = text
	f.Invalid = false
	if f.OnChange != nil {
		f.OnChange(text)
	}
	SetRedraw()
}

func (f *TextField) Draw(dst *eb.Image) {
	stroke := Palette[ColorFieldStroke]
	if f.Focused {
		stroke = Palette[ColorFieldFocus]
	}
	if f.Invalid {
		stroke = Palette[ColorAccent]
	}

	FillRoundRect(dst, f.Rect, 12, Palette[ColorField])
	StrokeRoundRect(dst, f.Rect, 12, 1.5, stroke)

	face := RegularFace(f.FontSize)
	inner := f.Rect.Inset(14)

	text := f.Text
	clr := Palette[ColorText]
	if text == "" {
		text = f.Placeholder
		clr = Palette[ColorTextDim]
	}

	var lines []string
	if f.Multiline {
		lines = WrapText(text, face, inner.Dx())
	} else {
		lines = []string{text}
	}

	lineSpacing := FontLineSpacing(face)

	// keep the end of the text in view
	maxLines := max(1, int(inner.Dy()/lineSpacing))
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}

	y := inner.Min.Y
	if !f.Multiline {
		y = FRectangleCenter(inner).Y - lineSpacing*0.5
	}

	DrawTextAt(dst, strings.Join(lines, "\n"), face, inner.Min.X, y, clr, ebt.AlignStart)

	if f.Focused && (GlobalTimerNow()/caretBlinkRate)%2 == 0 {
		caretX := inner.Min.X
		caretY := y + lineSpacing*f64(len(lines)-1)
		if f.Text != "" {
			w, _ := ebt.Measure(lines[len(lines)-1], face, 0)
			caretX += w + 1
		} else {
			caretY = y
		}
		StrokeLine(dst, caretX, caretY+2, caretX, caretY+lineSpacing-2, 1.5, Palette[ColorText])
	}
}
