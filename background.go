package firstx

import (
	"image/color"
	"math"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/ojrac/opensimplex-go"
)

const (
	bgWordCount  = 25
	bgWordText   = "FIRSTX"
	bgNoiseSeed  = 2024
	bgDriftSpeed = 0.04
	bgDriftRange = 36
)

type bgWord struct {
	// position as a fraction of the viewport
	X, Y float64

	Size     float64
	Rotation float64

	// where the word was last drawn relative to X, Y
	DriftX, DriftY float64
}

// BackgroundSection is the fixed layer behind the page. It is driven by
// the engine regardless of visibility.
type BackgroundSection struct {
	Node *StyleNode

	Words [bgWordCount]bgWord

	noise opensimplex.Noise
	time  float64
}

func NewBackgroundSection() *BackgroundSection {
	b := new(BackgroundSection)
	b.Node = NewStyleNode("background")
	b.noise = opensimplex.New(bgNoiseSeed)

	// 5 by 5 grid, nudged by noise so it does not look like one
	for i := range b.Words {
		col, row := i%5, i/5
		jitterX := b.noise.Eval2(f64(i)*1.7, 0.5) * 0.08
		jitterY := b.noise.Eval2(0.5, f64(i)*1.7) * 0.08

		b.Words[i] = bgWord{
			X:        (f64(col)+0.5)/5 + jitterX,
			Y:        (f64(row)+0.5)/5 + jitterY,
			Size:     28 + (b.noise.Eval2(f64(i), 3.3)*0.5+0.5)*46,
			Rotation: b.noise.Eval2(f64(i), 7.1) * 0.35,
		}
	}

	return b
}

// Drift returns how far word i is pushed from its rest position at time t.
func (b *BackgroundSection) Drift(i int, t float64) (float64, float64) {
	x := b.noise.Eval2(f64(i)*10, t*bgDriftSpeed) * bgDriftRange
	y := b.noise.Eval2(t*bgDriftSpeed, f64(i)*10) * bgDriftRange
	return x, y
}

func (b *BackgroundSection) Update(p *Page, rect FRectangle) {
	if !p.visible {
		return
	}

	b.time += UpdateDelta().Seconds()

	// only redraw once some word moved by half a pixel
	moved := false
	for i := range b.Words {
		w := &b.Words[i]
		x, y := b.Drift(i, b.time)
		if math.Abs(x-w.DriftX) >= 0.5 || math.Abs(y-w.DriftY) >= 0.5 {
			moved = true
		}
	}

	if moved {
		for i := range b.Words {
			b.Words[i].DriftX, b.Words[i].DriftY = b.Drift(i, b.time)
		}
		SetRedraw()
	}
}

func (b *BackgroundSection) Draw(dst *eb.Image, p *Page, rect FRectangle) {
	angle := b.Node.Float("--bg-angle", 0)
	darkness := b.Node.Float("--bg-darkness", 1)
	red := b.Node.Float("--bg-red", 0.18)
	reveal := b.Node.Float("--bg-reveal", 0)
	wordOpacity := b.Node.Float("--bg-word-opacity", 0.05)

	from := LerpColorRGBA(Palette[ColorBg], Palette[ColorAccentDeep], red)
	to := LerpColorRGBA(Palette[ColorBg], color.NRGBA{0, 0, 0, 255}, darkness*0.7)

	drawLinearGradient(dst, rect, angle*math.Pi/180, from, to)

	wordColor := Palette[ColorBgWord]
	alpha := wordOpacity * (0.6 + 0.4*reveal)

	for i, w := range b.Words {
		face := BoldFace(w.Size)
		textW, textH := ebt.Measure(bgWordText, face, FontLineSpacing(face))

		op := &DrawTextOptions{}
		op.GeoM.Concat(TransformToCenter(textW, textH, 1, 1, w.Rotation))
		op.GeoM.Translate(
			rect.Min.X+w.X*rect.Dx()+w.DriftX,
			rect.Min.Y+w.Y*rect.Dy()+w.DriftY,
		)
		op.ColorScale.ScaleWithColor(wordColor)
		op.ColorScale.ScaleAlpha(f32(alpha * (0.7 + 0.3*math.Sin(f64(i)))))

		DrawText(dst, bgWordText, face, op)
	}
}

var gradientVertices [4]eb.Vertex
var gradientIndices = [6]uint16{0, 1, 2, 1, 3, 2}

// drawLinearGradient fills rect with a gradient running along angle radians.
func drawLinearGradient(dst *eb.Image, rect FRectangle, angle float64, from, to color.Color) {
	center := FRectangleCenter(rect)
	dirX, dirY := math.Sin(angle), -math.Cos(angle)

	// half the gradient line length, like css linear-gradient
	halfLen := (math.Abs(rect.Dx()*dirX) + math.Abs(rect.Dy()*dirY)) * 0.5
	if halfLen <= 0 {
		halfLen = 1
	}

	corners := [4]FPoint{
		rect.Min,
		FPt(rect.Max.X, rect.Min.Y),
		FPt(rect.Min.X, rect.Max.Y),
		rect.Max,
	}

	c0 := ColorNormalized(from, true)
	c1 := ColorNormalized(to, true)

	for i, corner := range corners {
		d := corner.Sub(center)
		t := Clamp((d.X*dirX+d.Y*dirY)/halfLen*0.5+0.5, 0, 1)

		v := &gradientVertices[i]
		v.DstX = f32(corner.X)
		v.DstY = f32(corner.Y)
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = f32(Lerp(c0[0], c1[0], t))
		v.ColorG = f32(Lerp(c0[1], c1[1], t))
		v.ColorB = f32(Lerp(c0[2], c1[2], t))
		v.ColorA = f32(Lerp(c0[3], c1[3], t))
	}

	DrawTriangles(dst, gradientVertices[:], gradientIndices[:], WhiteImage)
}
