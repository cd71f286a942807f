// Package assets loads textures by logical path and builds the animation
// clips actors are constructed with.
package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/tilecore/internal/domain/animation"
)

// LoadFunc reads the texture stored at path
type LoadFunc func(fsys fs.FS, path string) (animation.Strip, error)

// LoadEbitenImage decodes an image file into a GPU texture
func LoadEbitenImage(fsys fs.FS, path string) (animation.Strip, error) {
	img, _, err := ebitenutil.NewImageFromFileSystem(fsys, path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// LoadDecodedImage decodes an image file in memory, for use without a
// graphics context
func LoadDecodedImage(fsys fs.FS, path string) (animation.Strip, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Cache hands out one texture per logical path
type Cache struct {
	fsys   fs.FS
	load   LoadFunc
	strips map[string]animation.Strip
}

// NewCache creates a cache reading from fsys. A nil load uses
// LoadEbitenImage.
func NewCache(fsys fs.FS, load LoadFunc) *Cache {
	if load == nil {
		load = LoadEbitenImage
	}
	return &Cache{
		fsys:   fsys,
		load:   load,
		strips: make(map[string]animation.Strip),
	}
}

// Get returns the texture at path, loading it on first use
func (c *Cache) Get(path string) (animation.Strip, error) {
	if s, ok := c.strips[path]; ok {
		return s, nil
	}

	s, err := c.load(c.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	c.strips[path] = s
	return s, nil
}

// Put stores a texture under path, replacing any cached one
func (c *Cache) Put(path string, s animation.Strip) {
	c.strips[path] = s
}

// Len returns the number of cached textures
func (c *Cache) Len() int {
	return len(c.strips)
}
