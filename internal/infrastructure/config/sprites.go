package config

// SpritesConfig is the root config for sprites.yaml
type SpritesConfig struct {
	Sets map[string]SpriteSetConfig `yaml:"sets"`
	Gem  GemSpriteConfig            `yaml:"gem"`
}

// SpriteSetConfig lists the clips of one actor type
type SpriteSetConfig struct {
	Clips map[string]ClipConfig `yaml:"clips"`
}

// ClipConfig describes a horizontal strip of square frames.
// Frames and Size only shape the placeholder drawn when the strip file is
// missing.
type ClipConfig struct {
	Strip     string  `yaml:"strip"`
	FrameTime float64 `yaml:"frameTime"`
	Loop      bool    `yaml:"loop"`
	Frames    int     `yaml:"frames,omitempty"`
	Size      int     `yaml:"size,omitempty"`
}

type GemSpriteConfig struct {
	Texture string `yaml:"texture"`
}
