package texture

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RGB is a texel colour.
type RGB [3]uint8

// tileFunc returns the colour of texel (u, v) in a size x size tile.
type tileFunc func(u, v, size int) RGB

// hash gives a stable per-texel noise value in [0, 1).
func hash(u, v, seed int) float64 {
	h := uint32(u*374761393+v*668265263+seed*1442695041) ^ 0x5bd1e995
	h = (h ^ (h >> 13)) * 1274126177
	return float64(h^(h>>16)) / float64(math.MaxUint32+1)
}

func scale(c RGB, f float64) RGB {
	return RGB{
		uint8(math.Min(255, float64(c[0])*f)),
		uint8(math.Min(255, float64(c[1])*f)),
		uint8(math.Min(255, float64(c[2])*f)),
	}
}

func brick(base, mortar RGB, seed int) tileFunc {
	return func(u, v, size int) RGB {
		row := size / 4
		offset := 0
		if (v/row)%2 == 1 {
			offset = size / 4
		}
		if v%row == 0 || (u+offset)%(size/2) == 0 {
			return mortar
		}
		return scale(base, 0.85+0.3*hash(u, v, seed))
	}
}

func planks(base RGB, seed int) tileFunc {
	return func(u, v, size int) RGB {
		if u%(size/4) == 0 {
			return scale(base, 0.5)
		}
		grain := 0.9 + 0.1*math.Sin(float64(v)*0.8+float64(u/(size/4))*2)
		return scale(base, grain*(0.9+0.15*hash(u/2, v, seed)))
	}
}

func door(frame, panel RGB) tileFunc {
	return func(u, v, size int) RGB {
		edge := size / 8
		if u < edge || u >= size-edge || v < edge {
			return frame
		}
		if u == size/2 && v > size/2 {
			return RGB{200, 180, 60}
		}
		return planks(panel, 7)(u, v, size)
	}
}

func noisy(base RGB, seed int, amount float64) tileFunc {
	return func(u, v, size int) RGB {
		return scale(base, 1-amount/2+amount*hash(u, v, seed))
	}
}

func checker(a, b RGB) tileFunc {
	return func(u, v, size int) RGB {
		if (u/(size/4)+v/(size/4))%2 == 0 {
			return a
		}
		return b
	}
}

func buildAtlas(size int, tiles []tileFunc) *Atlas {
	pix := make([]byte, 0, len(tiles)*size*size*3)
	for _, tile := range tiles {
		for v := 0; v < size; v++ {
			for u := 0; u < size; u++ {
				c := tile(u, v, size)
				pix = append(pix, c[0], c[1], c[2])
			}
		}
	}
	atlas, err := NewAtlas(pix, size)
	if err != nil {
		panic(err) // size is validated by config, tiles is never empty
	}
	return atlas
}

// GenerateTileAtlas builds the wall and flat atlas: red brick, grey stone,
// wooden planks, a door, mossy stone, blue brick, a checker floor and dirt.
func GenerateTileAtlas(size int) *Atlas {
	return buildAtlas(size, []tileFunc{
		brick(RGB{150, 60, 45}, RGB{90, 85, 80}, 1),
		noisy(RGB{120, 120, 125}, 2, 0.4),
		planks(RGB{130, 90, 50}, 3),
		door(RGB{70, 50, 30}, RGB{150, 105, 60}),
		noisy(RGB{70, 110, 60}, 5, 0.6),
		brick(RGB{60, 70, 150}, RGB{40, 40, 50}, 6),
		checker(RGB{170, 170, 160}, RGB{90, 90, 85}),
		noisy(RGB{110, 85, 60}, 8, 0.5),
	})
}

// GenerateSpriteAtlas builds the billboard atlas on a chroma key background:
// a key, a barrel, the pursuer and a goal star.
func GenerateSpriteAtlas(size int, key RGB) *Atlas {
	disc := func(fill RGB, cx, cy, r float64) tileFunc {
		return func(u, v, size int) RGB {
			s := float64(size)
			if math.Hypot(float64(u)-cx*s, float64(v)-cy*s) < r*s {
				return fill
			}
			return key
		}
	}
	keyShape := func(u, v, size int) RGB {
		if c := disc(RGB{230, 190, 40}, 0.5, 0.3, 0.18)(u, v, size); c != key {
			if math.Hypot(float64(u)-0.5*float64(size), float64(v)-0.3*float64(size)) < 0.08*float64(size) {
				return key
			}
			return c
		}
		if u >= size*7/16 && u < size*9/16 && v >= size*4/10 && v < size*9/10 {
			return RGB{230, 190, 40}
		}
		if u >= size*9/16 && u < size*11/16 && (v*10/size == 7 || v*10/size == 8) {
			return RGB{200, 160, 30}
		}
		return key
	}
	barrel := func(u, v, size int) RGB {
		if v < size/4 || u < size/4 || u >= size*3/4 {
			return key
		}
		if v%(size/4) == 0 {
			return RGB{60, 60, 60}
		}
		return planks(RGB{120, 80, 40}, 11)(u, v, size)
	}
	pursuer := func(u, v, size int) RGB {
		c := disc(RGB{200, 200, 220}, 0.5, 0.4, 0.3)(u, v, size)
		if c == key && v >= size*4/10 && v < size*9/10 && u >= size/5 && u < size*4/5 {
			if (u/(size/8))%2 == 0 || v < size*8/10 {
				c = RGB{200, 200, 220}
			}
		}
		if c != key && v > size*3/10 && v < size*4/10 && (u*8/size == 3 || u*8/size == 4) {
			return RGB{180, 20, 20}
		}
		return c
	}
	star := func(u, v, size int) RGB {
		dx := float64(u) - float64(size)/2
		dy := float64(v) - float64(size)/2
		angle := math.Atan2(dy, dx)
		r := float64(size) * (0.25 + 0.15*math.Cos(5*angle))
		if math.Hypot(dx, dy) < r {
			return RGB{250, 230, 90}
		}
		return key
	}
	return buildAtlas(size, []tileFunc{keyShape, barrel, pursuer, star})
}

// GenerateSky builds a panoramic sky band with a horizon glow and a repeating
// range of hills along the bottom edge.
func GenerateSky(w, h int) *Image {
	pix := make([]byte, 0, w*h*3)
	top, horizon := RGB{40, 70, 150}, RGB{190, 150, 170}
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			hill := float64(h) * (0.75 + 0.12*math.Sin(float64(x)*2*math.Pi/float64(w)*3) + 0.05*math.Sin(float64(x)*2*math.Pi/float64(w)*7))
			var c RGB
			if float64(y) > hill {
				c = scale(RGB{50, 80, 60}, 0.8+0.2*hash(x, y, 13))
			} else {
				for i := range c {
					c[i] = uint8(float64(top[i])*(1-t) + float64(horizon[i])*t)
				}
				if hash(x, y, 17) > 0.985 && t < 0.5 {
					c = RGB{240, 240, 255}
				}
			}
			pix = append(pix, c[0], c[1], c[2])
		}
	}
	img, _ := NewImage(w, h, pix)
	return img
}

// GenerateScreen builds a fullscreen card with a centred caption, used for the
// title and the end screens.
func GenerateScreen(w, h int, background, ink RGB, caption string) *Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		shade := 0.6 + 0.4*float64(y)/float64(h)
		c := scale(background, shade)
		for x := 0; x < w; x++ {
			dst.SetRGBA(x, y, color.RGBA{c[0], c[1], c[2], 255})
		}
	}

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{ink[0], ink[1], ink[2], 255}),
		Face: face,
	}
	width := d.MeasureString(caption).Round()
	d.Dot = fixed.P((w-width)/2, (h+face.Ascent-face.Descent)/2)
	d.DrawString(caption)

	return &Image{W: w, H: h, pix: toRGB(dst, w, h)}
}
