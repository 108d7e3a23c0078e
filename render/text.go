package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"neoncity/logging"
)

type faceKey struct {
	bold bool
	size float64
}

// fontSet 原生分辨率文字：按字号缓存 face
type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

func newFontSet() (*fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &fontSet{regular: regular, bold: bold, faces: make(map[faceKey]font.Face)}, nil
}

// face 字号按 0.5 取整后缓存；构造失败时退回内置位图字体
func (f *fontSet) face(bold bool, size float64) font.Face {
	size = math.Max(math.Round(size*2)/2, 4)
	key := faceKey{bold, size}
	if fc, ok := f.faces[key]; ok {
		return fc
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	fc, err := opentype.NewFace(src, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logging.Log.Warnw("font face fallback", "size", size, "err", err)
		return basicfont.Face7x13
	}
	f.faces[key] = fc
	return fc
}

func (f *fontSet) Close() {
	for k, fc := range f.faces {
		_ = fc.Close()
		delete(f.faces, k)
	}
}

type align int

const (
	alignLeft align = iota
	alignCenter
)

// drawText 在 (x, y) 处以基线绘制
func drawText(dst *image.RGBA, face font.Face, s string, x, y float64, al align, c color.Color) {
	if s == "" {
		return
	}
	if al == alignCenter {
		x -= float64(font.MeasureString(face, s)) / 64 / 2
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

func textWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// wrapText 按单词折行，使每行宽度不超过 maxWidth（单个超长单词独占一行）
func wrapText(face font.Face, s string, maxWidth float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line == "" || textWidth(face, candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
