// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tilecore/internal/application/scene"
	"github.com/younwookim/tilecore/internal/application/state"
	"github.com/younwookim/tilecore/internal/application/world"
	"github.com/younwookim/tilecore/internal/domain/animation"
	"github.com/younwookim/tilecore/internal/domain/geometry"
	"github.com/younwookim/tilecore/internal/domain/tile"
	"github.com/younwookim/tilecore/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorPlatform  = color.RGBA{140, 110, 70, 255}
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorGold      = color.RGBA{255, 215, 0, 255}
	colorCollector = color.RGBA{100, 200, 100, 160}
)

const (
	collectorW = 24
	collectorH = 44
	panSpeed   = 8
)

// WorldFactory builds a fresh world for the stage being played
type WorldFactory func() (*world.World, error)

// Input is the player's input for one tick
type Input struct {
	Pause   bool
	Save    bool
	Restart bool
	Kill    bool
	Exit    bool
	Timeout bool
	Collect bool
	PanX    int
	PanY    int
	MouseX  int
	MouseY  int
}

// Playing is the main gameplay scene
type Playing struct {
	newWorld WorldFactory
	world    *world.World
	screenW  int
	screenH  int
	dt       float64

	camX int
	camY int

	// Gems collected over every restart
	score int

	// Tick recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, ticks will be recorded.
func New(display config.DisplayConfig, newWorld WorldFactory, recordPath string) (*Playing, error) {
	w, err := newWorld()
	if err != nil {
		return nil, fmt.Errorf("failed to build world: %w", err)
	}

	framerate := display.Framerate
	if framerate <= 0 {
		framerate = 60
	}
	p := &Playing{
		newWorld:       newWorld,
		world:          w,
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		dt:             1.0 / float64(framerate),
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(w.Stage().ID)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p, nil
}

// World returns the world being played
func (p *Playing) World() *world.World {
	return p.world
}

// Score returns the number of gems collected
func (p *Playing) Score() int {
	return p.score
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if err := p.step(readInput()); err != nil {
		return nil, err
	}
	return nil, nil // nil = stay on this scene
}

func readInput() Input {
	in := Input{
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Kill:    inpututil.IsKeyJustPressed(ebiten.KeyK),
		Exit:    inpututil.IsKeyJustPressed(ebiten.KeyX),
		Timeout: inpututil.IsKeyJustPressed(ebiten.KeyT),
		Collect: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	in.MouseX, in.MouseY = ebiten.CursorPosition()
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.PanX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.PanX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.PanY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.PanY++
	}
	return in
}

func (p *Playing) step(in Input) error {
	if in.Save && p.recorder != nil {
		p.saveRecording()
	}
	if in.Restart {
		return p.restart()
	}

	w := p.world
	switch w.State() {
	case state.StatePaused:
		if in.Pause {
			w.SetState(state.StatePlaying)
		}
		return nil
	case state.StatePlaying:
		switch {
		case in.Pause:
			w.SetState(state.StatePaused)
			return nil
		case in.Kill:
			w.SetState(state.StatePlayerDead)
		case in.Exit:
			w.SetState(state.StateReachedExit)
		case in.Timeout:
			w.SetState(state.StateTimeExpired)
		}
	}

	p.pan(in.PanX*panSpeed, in.PanY*panSpeed)
	if in.Collect {
		w.SetCollector(p.collectorAt(in.MouseX, in.MouseY))
	} else {
		w.ClearCollector()
	}

	if p.recorder != nil {
		collector, ok := w.Collector()
		p.recorder.RecordTick(p.dt, w.State(), collector, ok)
	}

	collected, err := w.Update(p.dt)
	if err != nil {
		return err
	}
	p.score += len(collected)
	return nil
}

// collectorAt returns the collector bounds standing on the cursor
func (p *Playing) collectorAt(mouseX, mouseY int) geometry.Rect {
	x := float64(mouseX + p.camX)
	y := float64(mouseY + p.camY)
	return geometry.NewRect(x-collectorW/2, y-collectorH, collectorW, collectorH)
}

func (p *Playing) pan(dx, dy int) {
	grid := p.world.Grid()
	maxCamX := int(grid.PixelWidth()) - p.screenW
	maxCamY := int(grid.PixelHeight()) - p.screenH

	p.camX += dx
	p.camY += dy
	if p.camX > maxCamX {
		p.camX = maxCamX
	}
	if p.camY > maxCamY {
		p.camY = maxCamY
	}
	if p.camX < 0 {
		p.camX = 0
	}
	if p.camY < 0 {
		p.camY = 0
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d ticks)", filename, p.recorder.TickCount())
	}
}

func (p *Playing) restart() error {
	w, err := p.newWorld()
	if err != nil {
		return fmt.Errorf("failed to rebuild world: %w", err)
	}
	p.world = w

	// A trace only replays from a fresh world
	if p.recordFilename != "" {
		p.saveRecording()
		p.recorder = NewRecorder(w.Stage().ID)
		log.Printf("Recording restarted")
	}
	return nil
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawTiles(screen)
	p.drawGems(screen)
	p.drawEnemies(screen)
	p.drawCollector(screen)
	p.drawUI(screen)

	switch p.world.State() {
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume")
	case state.StatePlayerDead:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 120}, "YOU DIED\n\nPress R to restart")
	case state.StateReachedExit:
		p.drawOverlay(screen, color.RGBA{0, 80, 0, 120}, "LEVEL COMPLETE\n\nPress R to restart")
	case state.StateTimeExpired:
		p.drawOverlay(screen, color.RGBA{80, 80, 0, 120}, "TIME UP\n\nPress R to restart")
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image) {
	grid := p.world.Grid()
	tileW, tileH := grid.TileSize()

	view := geometry.NewRect(float64(p.camX), float64(p.camY), float64(p.screenW), float64(p.screenH))
	left, top, right, bottom := tile.Range(grid, view)
	for ty := max(top, 0); ty <= bottom && ty < grid.Height; ty++ {
		for tx := max(left, 0); tx <= right && tx < grid.Width; tx++ {
			var c color.Color
			switch grid.GetCollision(tx, ty) {
			case tile.Impassable:
				c = colorWall
			case tile.Platform:
				c = colorPlatform
			default:
				continue
			}

			x := float64(tx)*tileW - float64(p.camX)
			y := float64(ty)*tileH - float64(p.camY)
			h := tileH
			if c == colorPlatform {
				h = tileH / 6
			}
			ebitenutil.DrawRect(screen, x, y, tileW, h, c)
		}
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image) {
	for _, e := range p.world.Enemies() {
		region, ok := e.FrameRegion()
		if !ok || !p.drawRegion(screen, region, e.Position) {
			r := e.BoundingRectangle()
			ebitenutil.DrawRect(screen, r.X-float64(p.camX), r.Y-float64(p.camY), r.W, r.H, colorEnemy)
		}
	}
}

// drawRegion blits a frame so that its origin lands on position.
// It reports false for textures that are not GPU images.
func (p *Playing) drawRegion(screen *ebiten.Image, region animation.FrameRegion, position geometry.Vector) bool {
	tex, ok := region.Texture.(*ebiten.Image)
	if !ok {
		return false
	}
	frame := tex.SubImage(region.Source).(*ebiten.Image)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-region.Origin.X, -region.Origin.Y)
	if region.Flip {
		opts.GeoM.Scale(-1, 1)
	}
	opts.GeoM.Translate(position.X-float64(p.camX), position.Y-float64(p.camY))
	screen.DrawImage(frame, opts)
	return true
}

func (p *Playing) drawGems(screen *ebiten.Image) {
	tex, isImage := p.world.GemTexture().(*ebiten.Image)
	for _, g := range p.world.Gems() {
		pos := g.Position()
		if !isImage {
			ebitenutil.DrawRect(screen, pos.X-4-float64(p.camX), pos.Y-4-float64(p.camY), 8, 8, colorGold)
			continue
		}

		b := tex.Bounds()
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		opts.GeoM.Translate(pos.X-float64(p.camX), pos.Y-float64(p.camY))
		screen.DrawImage(tex, opts)
	}
}

func (p *Playing) drawCollector(screen *ebiten.Image) {
	r, ok := p.world.Collector()
	if !ok {
		return
	}
	ebitenutil.DrawRect(screen, r.X-float64(p.camX), r.Y-float64(p.camY), r.W, r.H, colorCollector)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("Gems: %d (left %d) | %s | tick %d", p.score, len(p.world.Gems()), p.world.State(), p.world.Ticks())
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-20)

	// Controls
	debugText := "Hold LClick: Collect | WASD: Pan | K/X/T: Die/Exit/Time up | R: Restart | ESC: Pause"
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
