package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop"
	lconfig "github.com/tomz197/invaders/internal/loop/config"
	"github.com/tomz197/invaders/internal/object"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor = color.RGBA{8, 8, 24, 255}
	shapeColor      = color.RGBA{220, 220, 255, 255}
	textColor       = color.White
)

// Game adapts a loop.World to ebiten.
type Game struct {
	world   *loop.World
	surface surface
	logger  *log.Logger
}

func main() {
	logger := config.NewLogger(os.Stderr, "window")

	seed, err := config.GetEnvInt64("INVADERS_SEED", 0)
	if err != nil {
		logger.Fatal("invalid seed", "err", err)
	}
	world, err := loop.NewWorld(seed, logger)
	if err != nil {
		logger.Fatal("failed to create world", "err", err)
	}

	ebiten.SetWindowSize(lconfig.ViewWidth, lconfig.ViewHeight)
	ebiten.SetWindowTitle("Invaders")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(lconfig.TargetFPS)

	g := &Game{world: world, logger: logger}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", "err", err)
		os.Exit(1)
	}
	logger.Info("window closed", "score", world.Score)
}

// Update advances the world by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	dt := time.Second / time.Duration(ebiten.TPS())
	return g.world.Step(readInput(), dt)
}

// readInput maps the keyboard to the same key set the terminal uses.
func readInput() input.Input {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return input.Input{
		Left:  pressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: pressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    pressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:  pressed(ebiten.KeyArrowDown, ebiten.KeyS),
		Fire:  pressed(ebiten.KeySpace),
		Enter: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

// Draw renders the world and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.surface.img = screen
	if err := g.world.Draw(&g.surface); err != nil {
		g.logger.Error("draw failed", "err", err)
	}

	status := g.world.Status()
	switch status.State {
	case loop.GameStateStart:
		drawCentered(screen, "I N V A D E R S", lconfig.ViewHeight/2-20)
		drawCentered(screen, "Arrows/WASD move, SPACE shoots, ESC quits", lconfig.ViewHeight/2+10)
		drawCentered(screen, "Press SPACE to Start", lconfig.ViewHeight/2+40)
		return
	case loop.GameStateDead:
		drawCentered(screen, fmt.Sprintf("Respawn in %.1f seconds...", status.RespawnIn.Seconds()), lconfig.ViewHeight/2)
	case loop.GameStateOver:
		drawCentered(screen, "GAME OVER", lconfig.ViewHeight/2-10)
		drawCentered(screen, "Press SPACE to Restart", lconfig.ViewHeight/2+20)
	}

	text.Draw(screen, fmt.Sprintf("Score: %d", status.Score), basicfont.Face7x13, 8, 18, textColor)
	text.Draw(screen, fmt.Sprintf("Lives: %d", status.Lives), basicfont.Face7x13, lconfig.ViewWidth-70, 18, textColor)
	text.Draw(screen, fmt.Sprintf("Enemies: %d/%d  Squad: %d/%d",
		status.Enemies, lconfig.EnemyMax, status.Squad, lconfig.FormationMembersMax),
		basicfont.Face7x13, 8, lconfig.ViewHeight-8, textColor)
}

func drawCentered(screen *ebiten.Image, s string, y int) {
	width := len(s) * basicfont.Face7x13.Advance
	text.Draw(screen, s, basicfont.Face7x13, (lconfig.ViewWidth-width)/2, y, textColor)
}

// Layout keeps the logical screen at the view size; ebiten scales the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return lconfig.ViewWidth, lconfig.ViewHeight
}

// surface draws object shapes with ebiten's vector package.
type surface struct {
	img *ebiten.Image
}

var _ object.Surface = (*surface)(nil)

func (s *surface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), shapeColor, false)
}

func (s *surface) DrawRing(cx, cy, radius float64, _ int) {
	vector.StrokeCircle(s.img, float32(cx), float32(cy), float32(radius), 2, shapeColor, true)
}

func (s *surface) SetFloat(x, y float64) {
	vector.DrawFilledRect(s.img, float32(x)-1, float32(y)-1, 2, 2, shapeColor, false)
}
