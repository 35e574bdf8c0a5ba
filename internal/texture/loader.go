package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// decodeFile opens and decodes a png, jpeg, bmp or webp image.
func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// toRGB copies an image into a flat RGB array, scaling it to w x h with
// nearest neighbour sampling when the sizes differ.
func toRGB(src image.Image, w, h int) []byte {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if src.Bounds().Dx() == w && src.Bounds().Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}

	pix := make([]byte, 0, w*h*3)
	for i := 0; i < len(dst.Pix); i += 4 {
		pix = append(pix, dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2])
	}
	return pix
}

// AtlasFromImage slices a sheet of size x size tiles into an atlas, reading
// tiles left to right, then top to bottom.
func AtlasFromImage(img image.Image, size int) (*Atlas, error) {
	b := img.Bounds()
	if size <= 0 || b.Dx()%size != 0 || b.Dy()%size != 0 || b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: sheet %dx%d is not a grid of %d texel tiles", ErrAtlasSize, b.Dx(), b.Dy(), size)
	}

	cols, rows := b.Dx()/size, b.Dy()/size
	pix := make([]byte, 0, b.Dx()*b.Dy()*3)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			for v := 0; v < size; v++ {
				for u := 0; u < size; u++ {
					r, g, bl, _ := img.At(b.Min.X+tx*size+u, b.Min.Y+ty*size+v).RGBA()
					pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
				}
			}
		}
	}
	return NewAtlas(pix, size)
}

// LoadAtlas reads a tile sheet from disk.
func LoadAtlas(path string, size int) (*Atlas, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	atlas, err := AtlasFromImage(img, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return atlas, nil
}

// LoadImage reads a picture from disk and scales it to w x h.
func LoadImage(path string, w, h int) (*Image, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return NewImage(w, h, toRGB(img, w, h))
}
