// Package desktop hosts a game mode in a native window with Ebitengine.
// It draws the same draw list as the terminal host, at world resolution,
// and reads the real mouse for aiming.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/brick-arcade/internal/core"
	"github.com/vovakirdan/brick-arcade/internal/registry"
	"github.com/vovakirdan/brick-arcade/internal/storage"
)

// MaxFrameDelta caps the measured time between frames, in seconds.
const MaxFrameDelta = 0.05

const (
	hudLineHeight = 16
	hudMargin     = 8
)

var (
	background = color.RGBA{R: 12, G: 12, B: 20, A: 255}
	dimmer     = color.RGBA{A: 170}
)

// oneShot maps keys to actions delivered once per press.
var oneShot = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionLaunch},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionResume},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyB}, core.ActionBack},
	{[]ebiten.Key{ebiten.Key1}, core.ActionShot1},
	{[]ebiten.Key{ebiten.Key2}, core.ActionShot2},
	{[]ebiten.Key{ebiten.Key3}, core.ActionShot3},
}

// held maps keys to actions that stay active while pressed.
var held = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRight},
}

// Host implements ebiten.Game around a registry.Game.
type Host struct {
	game     registry.Game
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	face     font.Face
	pixel    *ebiten.Image
	input    core.InputFrame
	last     time.Time
	state    core.GameState
	runSaved bool

	backToMenu bool
	quitting   bool
}

// NewHost resets the game and prepares drawing resources.
// store and logger may be nil.
func NewHost(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	h := &Host{
		game:   game,
		store:  store,
		logger: logger,
		config: cfg,
		face:   basicfont.Face7x13,
		pixel:  pixel,
		input:  core.NewInputFrame(),
	}
	h.game.Reset(cfg)
	h.state = h.game.State()
	return h
}

// Update samples input and advances the game by the measured frame time.
func (h *Host) Update() error {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !h.last.IsZero() {
		dt = now.Sub(h.last).Seconds()
	}
	dt = core.Clamp(dt, 0, MaxFrameDelta)
	h.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.quitting = true
		return ebiten.Termination
	}

	h.sample()
	result := h.game.Step(dt, h.input)
	h.input.Clear()

	if h.state.GameOver && !result.State.GameOver {
		h.runSaved = false
	}
	h.state = result.State
	if h.state.GameOver && !h.runSaved {
		h.saveRun()
		h.runSaved = true
	}

	if result.Transition == core.TransitionMenu {
		h.backToMenu = true
		return ebiten.Termination
	}
	return nil
}

func (h *Host) sample() {
	for _, k := range oneShot {
		for _, key := range k.keys {
			if inpututil.IsKeyJustPressed(key) {
				h.input.Set(k.action)
			}
		}
	}
	for _, k := range held {
		for _, key := range k.keys {
			if ebiten.IsKeyPressed(key) {
				h.input.Set(k.action)
			}
		}
	}

	x, y := ebiten.CursorPosition()
	h.input.SetPointer(float64(x), float64(y))
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.input.Set(core.ActionFire)
	}
}

func (h *Host) saveRun() {
	h.logger.Info("game over", "mode", h.game.ID(), "score", h.state.Score, "won", h.state.Won)
	if h.store == nil {
		return
	}
	if _, err := h.store.SaveRun(storage.Run{
		Mode:       h.game.ID(),
		Difficulty: h.config.Difficulty,
		Score:      h.state.Score,
		Won:        h.state.Won,
	}); err != nil {
		h.logger.Warn("could not save run", "error", err)
	}
}

// Draw renders the current draw list.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	d := h.game.DrawList()

	for _, it := range d.Items {
		c := it.Color.RGBA()
		switch it.Kind {
		case core.DrawRect:
			h.drawRect(screen, it, c)
		case core.DrawCircle:
			vector.DrawFilledCircle(screen, float32(it.X), float32(it.Y), float32(it.Radius), c, true)
		case core.DrawLine:
			vector.StrokeLine(screen, float32(it.X), float32(it.Y), float32(it.X+it.W), float32(it.Y), 2, c, false)
		}
	}

	for i, line := range d.HUD {
		text.Draw(screen, line, h.face, hudMargin, hudMargin+(i+1)*hudLineHeight-4, core.ColorBrightWhite.RGBA())
	}

	if d.Overlay != nil {
		h.drawOverlay(screen, *d.Overlay)
	}
}

// drawRect scales and rotates a white pixel, matching the draw list's
// origin and rotation convention.
func (h *Host) drawRect(screen *ebiten.Image, it core.DrawItem, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(it.W, it.H)
	op.GeoM.Translate(-it.OriginX, -it.OriginY)
	op.GeoM.Rotate(it.Rotation * math.Pi / 180)
	op.GeoM.Translate(it.X, it.Y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(h.pixel, op)
}

func (h *Host) drawOverlay(screen *ebiten.Image, o core.Overlay) {
	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(ht), dimmer, false)

	lines := []struct {
		s string
		c core.Color
	}{
		{o.Title, core.ColorBrightYellow},
		{o.Subtitle, core.ColorWhite},
		{o.Hint, core.ColorGray},
	}
	y := ht/2 - len(lines)*hudLineHeight
	for _, l := range lines {
		bounds := text.BoundString(h.face, l.s)
		text.Draw(screen, l.s, h.face, (w-bounds.Dx())/2, y, l.c.RGBA())
		y += hudLineHeight * 2
	}
}

// Layout keeps the logical screen at world size so cursor positions are
// world coordinates.
func (h *Host) Layout(_, _ int) (int, int) {
	d := h.game.DrawList()
	return int(d.Width), int(d.Height)
}

// Run opens a window and blocks until it is closed, the player quits, or
// the game asks for the menu. It reports whether the menu was requested.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	h := NewHost(game, store, logger, cfg)
	d := game.DrawList()

	ebiten.SetWindowSize(int(d.Width), int(d.Height))
	ebiten.SetWindowTitle(fmt.Sprintf("Brick Arcade - %s", game.Title()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	h.logger.Info("window opened", "mode", game.ID(), "difficulty", cfg.Difficulty)
	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return false, fmt.Errorf("desktop: %w", err)
	}
	return h.backToMenu, nil
}
