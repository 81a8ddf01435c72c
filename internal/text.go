package internal

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"mediscan-kiosk/pkg/intake/constants"
)

// RenderText draws a single line of text. x is interpreted per align: the
// left edge, the center, or the right edge.
func RenderText(renderer *sdl.Renderer, text string, font *ttf.Font, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0
	}
	defer texture.Destroy()

	drawX := x
	switch align {
	case constants.TextAlignCenter:
		drawX = x - surface.W/2
	case constants.TextAlignRight:
		drawX = x - surface.W
	}

	rect := sdl.Rect{X: drawX, Y: y, W: surface.W, H: surface.H}
	renderer.Copy(texture, nil, &rect)
	return surface.H
}

// RenderMultilineText word-wraps text to maxWidth and draws it. Returns the
// total height drawn so callers can stack content below.
func RenderMultilineText(renderer *sdl.Renderer, text string, font *ttf.Font, maxWidth, x, y int32, color sdl.Color, align constants.TextAlign) int32 {
	if text == "" {
		return 0
	}

	_, fontHeight, err := font.SizeUTF8("Aj")
	if err != nil {
		fontHeight = 20
	}
	lineSpacing := int32(float64(fontHeight) * 0.2)

	lines := WrapText(text, font, maxWidth)
	currentY := y
	for _, line := range lines {
		h := RenderText(renderer, line, font, x, currentY, color, align)
		if h == 0 {
			h = int32(fontHeight)
		}
		currentY += h + lineSpacing
	}
	return currentY - y - lineSpacing
}

// WrapText splits text into lines no wider than maxWidth, breaking on
// spaces. Explicit newlines are honored.
func WrapText(text string, font *ttf.Font, maxWidth int32) []string {
	var out []string

	for _, paragraph := range strings.Split(text, "\n") {
		if paragraph == "" {
			out = append(out, "")
			continue
		}

		words := strings.Fields(paragraph)
		currentLine := ""
		for _, word := range words {
			testLine := currentLine
			if testLine != "" {
				testLine += " "
			}
			testLine += word

			width, _, _ := font.SizeUTF8(testLine)
			if int32(width) > maxWidth && currentLine != "" {
				out = append(out, currentLine)
				currentLine = word
			} else {
				currentLine = testLine
			}
		}
		if currentLine != "" {
			out = append(out, currentLine)
		}
	}

	return out
}

// TextHeight measures what RenderMultilineText would draw.
func TextHeight(text string, font *ttf.Font, maxWidth int32) int32 {
	if text == "" {
		return 0
	}
	_, fontHeight, err := font.SizeUTF8("Aj")
	if err != nil {
		fontHeight = 20
	}
	lineSpacing := int32(float64(fontHeight) * 0.2)
	n := int32(len(WrapText(text, font, maxWidth)))
	if n == 0 {
		return 0
	}
	return n*int32(fontHeight) + (n-1)*lineSpacing
}
