package internal

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders SVG data into a size x size RGBA image.
func RasterizeSVG(data []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// IconTexture rasterizes SVG data into a texture.
func IconTexture(renderer *sdl.Renderer, data []byte, size int32) (*sdl.Texture, error) {
	rgba, err := RasterizeSVG(data, int(size))
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, size, size, 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, fmt.Errorf("create icon surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("lock icon surface: %w", err)
	}
	pixels := surface.Pixels()
	rowBytes := int(size) * 4
	for y := 0; y < int(size); y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowBytes]
		copy(pixels[y*int(surface.Pitch):], src)
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
