package internal

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/*.svg
var iconFS embed.FS

// Icon names available to screens.
const (
	IconCamera     = "camera"
	IconMicrophone = "microphone"
	IconCheck      = "check"
	IconHeartbeat  = "heartbeat"
	IconWarning    = "warning"
)

var iconCache = NewTextureCache()

// RenderIcon draws the named icon at (x, y) with the given pixel size.
// Rasterized textures are cached per name and size.
func RenderIcon(renderer *sdl.Renderer, name string, x, y, size int32) {
	texture := iconTexture(renderer, name, size)
	if texture == nil {
		return
	}
	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: size, H: size})
}

func iconTexture(renderer *sdl.Renderer, name string, size int32) *sdl.Texture {
	key := fmt.Sprintf("%s@%d", name, size)
	if texture := iconCache.Get(key); texture != nil {
		return texture
	}

	raw, err := iconFS.ReadFile("assets/" + name + ".svg")
	if err != nil {
		Logger().Warn("unknown icon", "name", name)
		return nil
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(raw))
	if err != nil {
		Logger().Warn("failed to parse icon", "name", name, "error", err)
		return nil
	}

	w := int(size)
	h := int(size)
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		Logger().Warn("failed to create icon surface", "name", name, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		Logger().Warn("failed to create icon texture", "name", name, "error", err)
		return nil
	}

	iconCache.Set(key, texture)
	return texture
}

func destroyIconCache() {
	iconCache.Destroy()
}
