package main

import (
	"hash/fnv"
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/remeh/sizedwaitgroup"

	"goatrinik/inventory"
)

var (
	imageMu sync.Mutex
	// faceImages holds rendered icons by face name; imageCache their GPU
	// copies, created on first draw.
	faceImages = make(map[string]*image.RGBA)
	imageCache = make(map[string]*ebiten.Image)
)

// faceColor derives a stable, fairly saturated color from a face name.
func faceColor(face string) color.RGBA {
	h := fnv.New32a()
	h.Write([]byte(face))
	v := h.Sum32()
	c := color.RGBA{
		R: 64 + uint8(v&0x7f),
		G: 64 + uint8(v>>8&0x7f),
		B: 64 + uint8(v>>16&0x7f),
		A: 0xff,
	}
	return c
}

// renderFace draws a placeholder icon for face: a tinted tile with a
// border and one of four glyph shapes picked by the name hash.
func renderFace(face string) *image.RGBA {
	const size = inventory.IconSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fill := faceColor(face)
	edge := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, 0xff}
	glyph := color.RGBA{0xff - fill.R/3, 0xff - fill.G/3, 0xff - fill.B/3, 0xff}

	h := fnv.New32a()
	h.Write([]byte(face))
	shape := (h.Sum32() >> 24) % 4

	const (
		pad = 3
		mid = size / 2
	)
	for y := pad; y < size-pad; y++ {
		for x := pad; x < size-pad; x++ {
			c := fill
			if x == pad || y == pad || x == size-pad-1 || y == size-pad-1 {
				c = edge
			}
			dx, dy := abs(x-mid), abs(y-mid)
			switch shape {
			case 0:
				if dx*dx+dy*dy <= 64 {
					c = glyph
				}
			case 1:
				if dx+dy <= 9 {
					c = glyph
				}
			case 2:
				if dx <= 8 && dy <= 3 {
					c = glyph
				}
			case 3:
				if dx <= 3 && dy <= 9 || dx <= 7 && dy <= 2 {
					c = glyph
				}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// collectFaces lists the distinct faces of everything in and below the
// player.
func collectFaces(p *inventory.Player) []string {
	seen := map[string]bool{}
	var out []string
	var walk func(*inventory.Object)
	walk = func(ob *inventory.Object) {
		if ob == nil {
			return
		}
		for _, c := range ob.Inv {
			if c.Face != "" && !seen[c.Face] {
				seen[c.Face] = true
				out = append(out, c.Face)
			}
			walk(c)
		}
	}
	walk(p.Ob)
	walk(p.Below)
	return out
}

// warmIcons renders the icons for every known face in parallel.
func warmIcons(p *inventory.Player) {
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for _, face := range collectFaces(p) {
		imageMu.Lock()
		_, ok := faceImages[face]
		imageMu.Unlock()
		if ok {
			continue
		}
		wg.Add()
		go func(face string) {
			defer wg.Done()
			img := renderFace(face)
			imageMu.Lock()
			faceImages[face] = img
			imageMu.Unlock()
		}(face)
	}
	wg.Wait()
}

// faceImage returns the GPU image for face, rendering it if needed.
func faceImage(face string) *ebiten.Image {
	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := imageCache[face]; ok {
		return img
	}
	src, ok := faceImages[face]
	if !ok {
		src = renderFace(face)
		faceImages[face] = src
	}
	img := ebiten.NewImageFromImage(src)
	imageCache[face] = img
	return img
}
