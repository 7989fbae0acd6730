// Package main provides an interactive viewer for confetti presets, for
// tuning motion parameters and fade curves.
//
// Usage:
//
//	go run cmd/confetti-viewer/main.go [flags]
//
// Flags:
//
//	--config <path>   Load presets from a YAML file (default: built-in set)
//	--preset <name>   Start with a specific preset
//	--auto-play       Spawn a burst at the screen center every 2 seconds
//
// Controls:
//
//	Mouse Click       - Spawn the current preset at the cursor
//	Left/Right Arrow  - Switch to previous/next preset
//	Space             - Spawn at screen center
//	R                 - Clear all active confetti
//	A                 - Toggle auto-play
//	Q/Escape          - Quit
//
// The last selected preset and the auto-play flag are persisted across runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/confetti/internal/preset"
	"github.com/gonewx/confetti/pkg/confetto"
	"github.com/gonewx/confetti/pkg/emitter"
	"github.com/gonewx/confetti/pkg/shapes"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	configFlag   = flag.String("config", "", "Load presets from a YAML file")
	presetFlag   = flag.String("preset", "", "Start with a specific preset name")
	autoPlayFlag = flag.Bool("auto-play", false, "Spawn a burst at the screen center every 2 seconds")
)

var errQuit = errors.New("quit requested")

// builtinPresets is the fallback preset set when no --config is given.
const builtinPresets = `
presets:
  - name: celebration
    initialCount: 40
    emissionRate: 60
    emissionDuration: 2000
    maxActive: 300
    velocityX: "[-120 120]"
    velocityY: "[-450 -250]"
    accelerationY: "600"
    targetVelocityY: "350"
    rotationalVelocity: "[-540 540]"
    ttl: "6000"
    fade: "linear:reverse"
  - name: fountain
    emissionRate: 120
    emissionDuration: 4000
    velocityX: "[-60 60]"
    velocityY: "[-700 -500]"
    accelerationY: "900"
    rotationalVelocity: "[-360 360]"
    ttl: "3000"
    fade: "outCubic:reverse"
  - name: snow
    emissionRate: 30
    velocityX: "[-20 20]"
    velocityY: "[40 90]"
    targetVelocityY: "120"
    accelerationY: "30"
    rotationalVelocity: "[-90 90]"
    fade: "inSine:reverse"
`

// confettiColors is the palette cycled by the shape generator.
var confettiColors = []color.Color{
	color.RGBA{0xe8, 0x4d, 0x5a, 0xff},
	color.RGBA{0xf2, 0xc1, 0x4e, 0xff},
	color.RGBA{0x4d, 0xb6, 0x6e, 0xff},
	color.RGBA{0x4d, 0x79, 0xe8, 0xff},
	color.RGBA{0xb0, 0x5c, 0xd6, 0xff},
}

// viewerSettings is the persisted viewer state.
type viewerSettings struct {
	LastPreset string `yaml:"lastPreset"`
	AutoPlay   bool   `yaml:"autoPlay"`
}

const (
	settingsObject   = "viewer"
	settingsProperty = "state"
)

// burst is one running confetti animation with its own start time.
type burst struct {
	manager *emitter.Manager
	started time.Time
}

// ViewerGame implements ebiten.Game for the preset viewer.
type ViewerGame struct {
	presets  []preset.Preset
	current  int
	bursts   []*burst
	autoPlay bool
	lastAuto time.Time

	storage  *gdata.Manager // may be nil: settings just don't persist
	settings viewerSettings

	statusMessage string
}

// NewViewerGame loads presets and the persisted viewer state.
func NewViewerGame() (*ViewerGame, error) {
	var file *preset.File
	var err error
	if *configFlag != "" {
		file, err = preset.Load(*configFlag)
	} else {
		file, err = preset.Parse([]byte(builtinPresets))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, errors.New("no presets defined")
	}

	g := &ViewerGame{
		presets:  file.Presets,
		autoPlay: *autoPlayFlag,
	}

	storage, err := gdata.Open(gdata.Config{AppName: "confetti_viewer"})
	if err != nil {
		log.Printf("[Viewer] Warning: storage unavailable: %v (settings won't persist)", err)
	} else {
		g.storage = storage
		g.loadSettings()
	}

	// An explicit flag wins over the persisted preset.
	if *presetFlag != "" {
		g.selectPreset(*presetFlag)
	} else if g.settings.LastPreset != "" {
		g.selectPreset(g.settings.LastPreset)
	}
	g.autoPlay = *autoPlayFlag || g.settings.AutoPlay

	return g, nil
}

// loadSettings restores the persisted viewer state, falling back to
// defaults on any failure.
func (g *ViewerGame) loadSettings() {
	if !g.storage.ObjectPropExists(settingsObject, settingsProperty) {
		return
	}
	data, err := g.storage.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		log.Printf("[Viewer] Warning: failed to load settings: %v", err)
		return
	}
	if err := yaml.Unmarshal(data, &g.settings); err != nil {
		log.Printf("[Viewer] Warning: failed to unmarshal settings: %v", err)
	}
}

// saveSettings persists the viewer state; a nil storage is a no-op.
func (g *ViewerGame) saveSettings() {
	if g.storage == nil {
		return
	}
	g.settings.LastPreset = g.presets[g.current].Name
	g.settings.AutoPlay = g.autoPlay
	data, err := yaml.Marshal(&g.settings)
	if err != nil {
		log.Printf("[Viewer] Warning: failed to marshal settings: %v", err)
		return
	}
	if err := g.storage.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		log.Printf("[Viewer] Warning: failed to save settings: %v", err)
	}
}

// selectPreset switches to the named preset if it exists.
func (g *ViewerGame) selectPreset(name string) {
	for i := range g.presets {
		if g.presets[i].Name == name {
			g.current = i
			return
		}
	}
	log.Printf("[Viewer] Unknown preset %q, keeping %q", name, g.presets[g.current].Name)
}

// rectGenerator builds the confetto generator for one burst: paper
// rectangles cycling through the palette.
func rectGenerator() emitter.Generator {
	return emitter.GeneratorFunc(func() *confetto.Confetto {
		c := confettiColors[rand.Intn(len(confettiColors))]
		return confetto.New(&shapes.Rect{W: 8, H: 14, Color: c})
	})
}

// spawnAt starts a burst of the current preset at the given position.
func (g *ViewerGame) spawnAt(x, y float64) {
	p := &g.presets[g.current]
	params, err := p.Params()
	if err != nil {
		g.statusMessage = fmt.Sprintf("preset %s: %v", p.Name, err)
		log.Printf("[Viewer] %s", g.statusMessage)
		return
	}

	bound := image.Rect(-100, -100, screenWidth+100, screenHeight+100)
	m := emitter.NewManager(rectGenerator(), emitter.PointSource(x, y), bound, p.Config(), params)
	g.bursts = append(g.bursts, &burst{manager: m, started: time.Now()})
	g.statusMessage = fmt.Sprintf("spawned %s at (%.0f, %.0f)", p.Name, x, y)
}

func (g *ViewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.saveSettings()
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.current = (g.current - 1 + len(g.presets)) % len(g.presets)
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.current = (g.current + 1) % len(g.presets)
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.autoPlay = !g.autoPlay
		g.saveSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.bursts = nil
		g.statusMessage = "cleared"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.spawnAt(screenWidth/2, screenHeight/2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.spawnAt(float64(mx), float64(my))
	}

	if g.autoPlay && time.Since(g.lastAuto) > 2*time.Second {
		g.spawnAt(screenWidth/2, screenHeight/2)
		g.lastAuto = time.Now()
	}

	// Drive each burst on its own clock and drop the finished ones.
	alive := g.bursts[:0]
	for _, b := range g.bursts {
		b.manager.Update(time.Since(b.started).Milliseconds())
		if !b.manager.Done() {
			alive = append(alive, b)
		}
	}
	g.bursts = alive

	return nil
}

func (g *ViewerGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x12, 0x18, 0xff})

	for _, b := range g.bursts {
		b.manager.Draw(screen)
	}

	active := 0
	for _, b := range g.bursts {
		active += b.manager.ActiveCount()
	}

	ebitenutil.DebugPrintAt(screen, "Confetti Preset Viewer", 10, 10)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Preset: %s (%d/%d)  <- -> to switch", g.presets[g.current].Name, g.current+1, len(g.presets)), 10, 30)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Bursts: %d  Confetti: %d", len(g.bursts), active), 10, 50)
	if g.autoPlay {
		ebitenutil.DebugPrintAt(screen, "[Auto-play ON]", screenWidth-120, 10)
	}
	if g.statusMessage != "" {
		ebitenutil.DebugPrintAt(screen, g.statusMessage, 10, 70)
	}
}

func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	game, err := NewViewerGame()
	if err != nil {
		log.Fatal("Failed to initialize viewer:", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Confetti Preset Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}

	log.Println("Viewer closed")
	os.Exit(0)
}
