package config

// TuningConfig is the root config for tuning.json
type TuningConfig struct {
	Display DisplayConfig     `json:"display"`
	Physics PhysicsSettings   `json:"physics"`
	Enemy   EnemyTuningConfig `json:"enemy"`
	Gem     GemTuningConfig   `json:"gem"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// PhysicsSettings applies to every actor that settles onto tiles
type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`      // world units per second²
	MaxFallSpeed float64 `json:"maxFallSpeed"` // world units per second
}

// EnemyTuningConfig configures the patrol behavior
type EnemyTuningConfig struct {
	MoveSpeed         float64 `json:"moveSpeed"`
	MaxWaitTime       float64 `json:"maxWaitTime"`
	BoundsWidthRatio  float64 `json:"boundsWidthRatio"`
	BoundsHeightRatio float64 `json:"boundsHeightRatio"`
}

// GemTuningConfig configures gem pickups.
// Sizes are relative: the radius to the tile width, the bounce height to
// the gem texture height.
type GemTuningConfig struct {
	RadiusRatio       float64 `json:"radiusRatio"`
	BounceHeightRatio float64 `json:"bounceHeightRatio"`
	BounceRate        float64 `json:"bounceRate"`
	BounceSync        float64 `json:"bounceSync"`
}
