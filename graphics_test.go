package firstx

import (
	"bytes"
	"strings"
	"testing"

	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *ebt.GoTextFace {
	t.Helper()
	src, err := ebt.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("failed to load font: %v", err)
	}
	return &ebt.GoTextFace{Source: src, Size: size}
}

func TestWrapText(t *testing.T) {
	face := testFace(t, 16)
	const maxWidth = 200

	for _, text := range []string{finMindIntro, finMindPrompt, WorkflowCards[1].Body} {
		lines := WrapText(text, face, maxWidth)

		if len(lines) < 2 {
			t.Errorf("%q fit on %d line at %dpx", text, len(lines), maxWidth)
		}

		for _, line := range lines {
			if !strings.Contains(line, " ") {
				continue
			}
			if w, _ := ebt.Measure(line, face, 0); w > maxWidth {
				t.Errorf("line %q is %vpx wide", line, w)
			}
		}

		if got := strings.Join(lines, " "); got != strings.Join(strings.Fields(text), " ") {
			t.Errorf("wrapping lost words:\n%q\n%q", got, text)
		}
	}
}

func TestWrapTextKeepsNewlines(t *testing.T) {
	face := testFace(t, 16)

	lines := WrapText("one\n\ntwo", face, 1000)
	if len(lines) != 3 || lines[0] != "one" || lines[1] != "" || lines[2] != "two" {
		t.Errorf("lines = %q", lines)
	}
}

func TestParagraphHeight(t *testing.T) {
	face := testFace(t, 16)

	one := ParagraphHeight("short", face, 1000)
	if one != FontLineSpacing(face) {
		t.Errorf("one line = %v, want %v", one, FontLineSpacing(face))
	}

	many := ParagraphHeight(finMindIntro, face, 150)
	if many <= one*2 {
		t.Errorf("narrow paragraph is only %v tall", many)
	}
}
