package main

import (
	"flag"
	"fmt"
	"image"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tilecore/internal/application/game"
	"github.com/younwookim/tilecore/internal/application/replay"
	"github.com/younwookim/tilecore/internal/application/scene/playing"
	"github.com/younwookim/tilecore/internal/application/world"
	"github.com/younwookim/tilecore/internal/domain/animation"
	"github.com/younwookim/tilecore/internal/infrastructure/assets"
	"github.com/younwookim/tilecore/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "demo", "Stage to load from configs/stages")
	formatFlag := flag.String("format", "auto", "Stage file format: json, tmx or auto")
	recordFlag := flag.String("record", "", "Record ticks to file (e.g., -record trace.json)")
	replayFlag := flag.String("replay", "", "Replay a recorded trace without opening a window")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	stageCfg, err := loadStage(loader, *stageFlag, *formatFlag)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	if *replayFlag != "" {
		if err := runReplay(cfg, stageCfg, fsys, *replayFlag); err != nil {
			log.Fatalf("Failed to replay: %v", err)
		}
		return
	}

	library := assets.NewLibrary(cfg.Sprites, assets.NewCache(fsys, nil))
	library.SetFallback(func(path string, frames, size int) (animation.Strip, error) {
		log.Printf("Missing texture %s, using placeholder", path)
		return ebiten.NewImageFromImage(placeholder(cfg.Sprites, path, frames, size)), nil
	})

	display := cfg.Tuning.Display
	scene, err := playing.New(display, func() (*world.World, error) {
		return world.New(cfg.Tuning, stageCfg, library)
	}, *recordFlag)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Tilecore - %s", stageCfg.Name))
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil {
		log.Fatal(err)
	}
}

func loadStage(loader *config.Loader, name, format string) (*config.StageConfig, error) {
	switch format {
	case "json":
		return loader.LoadStage(name)
	case "tmx":
		return loader.LoadTiledStage(name)
	case "auto":
		return loader.LoadStageAuto(name)
	default:
		return nil, fmt.Errorf("unknown stage format %q", format)
	}
}

// placeholder draws the stand-in for a missing texture file. The same
// images are used with and without a window so replays match live runs.
func placeholder(sprites *config.SpritesConfig, path string, frames, size int) image.Image {
	if path == sprites.Gem.Texture {
		return assets.GemPlaceholder(size)
	}
	return assets.Placeholder(path, frames, size)
}

// runReplay feeds a recorded trace into a fresh world and prints where the
// enemies ended up. Textures are decoded on the CPU since no window is open.
func runReplay(cfg *config.GameConfig, stageCfg *config.StageConfig, fsys fs.FS, path string) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if data.Stage != "" && data.Stage != stageCfg.ID {
		return fmt.Errorf("trace was recorded on stage %s", data.Stage)
	}

	library := assets.NewLibrary(cfg.Sprites, assets.NewCache(fsys, assets.LoadDecodedImage))
	library.SetFallback(func(path string, frames, size int) (animation.Strip, error) {
		return placeholder(cfg.Sprites, path, frames, size), nil
	})

	w, err := world.New(cfg.Tuning, stageCfg, library)
	if err != nil {
		return err
	}
	collected, err := replay.NewReplayer(*data).Run(w)
	if err != nil {
		return err
	}

	log.Printf("Replayed %d ticks on %s: %d gems collected, final state %s", w.Ticks(), stageCfg.ID, collected, w.State())
	for _, e := range w.Enemies() {
		log.Printf("  enemy %d (%s) at (%.2f, %.2f) facing %s, %s", e.ID, e.SpriteSet, e.Position.X, e.Position.Y, e.Direction(), e.State())
	}
	return nil
}
