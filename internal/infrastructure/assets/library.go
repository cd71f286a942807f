package assets

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/younwookim/tilecore/internal/domain/animation"
	"github.com/younwookim/tilecore/internal/domain/entity"
	"github.com/younwookim/tilecore/internal/infrastructure/config"
)

// Clip names every sprite set must provide
const (
	ClipIdle = "idle"
	ClipRun  = "run"
)

// ErrUnknownSpriteSet is returned for a sprite set missing from sprites.yaml
var ErrUnknownSpriteSet = errors.New("unknown sprite set")

// FallbackFunc builds a texture for a path with no file behind it
type FallbackFunc func(path string, frames, size int) (animation.Strip, error)

// Library builds clips from sprite-set config. Clips are shared by every
// actor of a sprite set.
type Library struct {
	cfg      *config.SpritesConfig
	cache    *Cache
	fallback FallbackFunc
	clips    map[string]*animation.Clip
}

// NewLibrary creates a library over cfg loading textures through cache
func NewLibrary(cfg *config.SpritesConfig, cache *Cache) *Library {
	return &Library{
		cfg:   cfg,
		cache: cache,
		clips: make(map[string]*animation.Clip),
	}
}

// SetFallback makes missing texture files resolve through fn instead of
// failing
func (l *Library) SetFallback(fn FallbackFunc) {
	l.fallback = fn
}

// EnemySprites returns the idle and run clips of a sprite set
func (l *Library) EnemySprites(spriteSet string) (entity.EnemySprites, error) {
	set, ok := l.cfg.Sets[spriteSet]
	if !ok {
		return entity.EnemySprites{}, fmt.Errorf("%w: %s", ErrUnknownSpriteSet, spriteSet)
	}

	idle, err := l.clip(spriteSet, ClipIdle, set)
	if err != nil {
		return entity.EnemySprites{}, err
	}
	run, err := l.clip(spriteSet, ClipRun, set)
	if err != nil {
		return entity.EnemySprites{}, err
	}
	return entity.EnemySprites{Idle: idle, Run: run}, nil
}

// GemTexture returns the texture gems are drawn with
func (l *Library) GemTexture() (animation.Strip, error) {
	return l.texture(l.cfg.Gem.Texture, 1, 0)
}

func (l *Library) clip(spriteSet, name string, set config.SpriteSetConfig) (*animation.Clip, error) {
	key := spriteSet + "/" + name
	if c, ok := l.clips[key]; ok {
		return c, nil
	}

	cc, ok := set.Clips[name]
	if !ok {
		return nil, fmt.Errorf("sprite set %s has no %s clip", spriteSet, name)
	}
	strip, err := l.texture(cc.Strip, cc.Frames, cc.Size)
	if err != nil {
		return nil, err
	}
	c, err := animation.NewClip(name, strip, cc.FrameTime, cc.Loop)
	if err != nil {
		return nil, fmt.Errorf("failed to build clip %s: %w", key, err)
	}
	l.clips[key] = c
	return c, nil
}

func (l *Library) texture(path string, frames, size int) (animation.Strip, error) {
	s, err := l.cache.Get(path)
	if err == nil {
		return s, nil
	}
	if l.fallback == nil || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	s, ferr := l.fallback(path, frames, size)
	if ferr != nil {
		return nil, fmt.Errorf("failed to build fallback for %s: %w", path, ferr)
	}
	l.cache.Put(path, s)
	return s, nil
}
