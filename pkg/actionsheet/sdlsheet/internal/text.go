package internal

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/actionsheet/pkg/actionsheet/constants"
	"github.com/veandco/go-sdl2/gfx"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const lineSpacingRatio = 0.2

// TextTexture renders one line of text into a texture.
func TextTexture(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, error) {
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create text texture: %w", err)
	}
	return texture, nil
}

// TextureSize returns the width and height of a texture.
func TextureSize(texture *sdl.Texture) (int32, int32) {
	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}
	return w, h
}

// WrapText splits text into lines no wider than maxWidth. Explicit newlines are kept.
func WrapText(font *ttf.Font, text string, maxWidth int32) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}

			width, _, err := font.SizeUTF8(candidate)
			if err == nil && int32(width) > maxWidth && current != "" {
				lines = append(lines, current)
				current = word
			} else {
				current = candidate
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// LineHeight returns the distance between wrapped lines.
func LineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + int32(float64(h)*lineSpacingRatio)
}

// AlignedX returns the x position of content of the given width inside a box.
func AlignedX(align constants.TextAlign, boxX, boxW, width int32) int32 {
	switch align {
	case constants.TextAlignLeft:
		return boxX
	case constants.TextAlignRight:
		return boxX + boxW - width
	default:
		return boxX + (boxW-width)/2
	}
}

// FillRoundedRect fills rect with rounded corners.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	radius = clampRadius(rect, radius)
	if radius <= 0 {
		gfx.BoxColor(renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1, color)
		return
	}
	gfx.RoundedBoxColor(renderer, rect.X, rect.Y, rect.X+rect.W-1, rect.Y+rect.H-1, radius, color)
}

// FillTopRoundedRect fills rect with only the two top corners rounded.
func FillTopRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, radius int32, color sdl.Color) {
	radius = clampRadius(rect, radius)
	FillRoundedRect(renderer, rect, radius, color)
	if radius > 0 {
		bottom := rect.Y + rect.H - 1
		gfx.BoxColor(renderer, rect.X, bottom-radius, rect.X+rect.W-1, bottom, color)
	}
}

// HorizontalLine draws a one pixel line.
func HorizontalLine(renderer *sdl.Renderer, x1, x2, y int32, color sdl.Color) {
	gfx.HlineColor(renderer, x1, x2, y, color)
}

func clampRadius(rect sdl.Rect, radius int32) int32 {
	limit := min(rect.W, rect.H) / 2
	return max(0, min(radius, limit))
}
