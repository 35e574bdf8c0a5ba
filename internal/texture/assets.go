package texture

import (
	"fmt"
	"log"

	"rayframe/internal/config"
)

// Assets is every texture the renderer samples. Tiles serves walls, floors and
// ceilings alike.
type Assets struct {
	Tiles   *Atlas
	Sprites *Atlas
	Sky     *Image
	Title   *Image
	Won     *Image
	Lost    *Image
}

// LoadAssets loads the configured image files. Any path left empty is replaced
// with generated art; a path that fails to load is an error.
func LoadAssets(cfg *config.Config) (*Assets, error) {
	size := cfg.Graphics.TextureSize
	w, h := cfg.GetScreenWidth(), cfg.GetScreenHeight()
	r, g, b := cfg.GetChromaKey()
	key := RGB{r, g, b}

	a := &Assets{}
	var err error

	if a.Tiles, err = loadAtlasOr("wall", cfg.Assets.WallTextures, size, func() *Atlas { return GenerateTileAtlas(size) }); err != nil {
		return nil, err
	}
	if a.Sprites, err = loadAtlasOr("sprite", cfg.Assets.SpriteTextures, size, func() *Atlas { return GenerateSpriteAtlas(size, key) }); err != nil {
		return nil, err
	}

	screens := []struct {
		dst    **Image
		path   string
		w, h   int
		create func() *Image
	}{
		{&a.Sky, cfg.Assets.Sky, w, cfg.Graphics.SkyHeight, func() *Image { return GenerateSky(w, max(cfg.Graphics.SkyHeight, 1)) }},
		{&a.Title, cfg.Assets.Title, w, h, func() *Image { return GenerateScreen(w, h, RGB{30, 30, 60}, RGB{240, 220, 120}, cfg.Display.WindowTitle) }},
		{&a.Won, cfg.Assets.Won, w, h, func() *Image { return GenerateScreen(w, h, RGB{30, 90, 40}, RGB{255, 255, 255}, "YOU WIN") }},
		{&a.Lost, cfg.Assets.Lost, w, h, func() *Image { return GenerateScreen(w, h, RGB{110, 20, 20}, RGB{255, 255, 255}, "CAUGHT") }},
	}
	for _, s := range screens {
		if s.path == "" {
			*s.dst = s.create()
			continue
		}
		img, err := LoadImage(s.path, s.w, max(s.h, 1))
		if err != nil {
			return nil, fmt.Errorf("failed to load image: %w", err)
		}
		*s.dst = img
	}

	return a, nil
}

func loadAtlasOr(name, path string, size int, generate func() *Atlas) (*Atlas, error) {
	if path == "" {
		log.Printf("No %s textures configured, using generated textures", name)
		return generate(), nil
	}
	atlas, err := LoadAtlas(path, size)
	if err != nil {
		return nil, fmt.Errorf("failed to load atlas: %w", err)
	}
	log.Printf("Loaded %d textures from %s", atlas.Count(), path)
	return atlas, nil
}
