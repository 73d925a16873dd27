package game

import (
	"errors"
	"image/color"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/spectrum-particles/internal/config"
	"github.com/iburimskiy/spectrum-particles/internal/particle"
	"github.com/iburimskiy/spectrum-particles/internal/spectrum"
)

var background = color.RGBA{R: 12, G: 14, B: 22, A: 255}

// Game ties the spectrum source to the particle field. Update is the render
// tick: it advances and draws the field onto an offscreen canvas, which Draw
// then presents.
type Game struct {
	field   *particle.Field
	canvas  *ebiten.Image
	surface *canvasSurface
	button  *button

	source    *spectrum.Source
	output    spectrum.Output
	trackPath string
	title     string

	prevKey map[ebiten.Key]bool
	lastErr error
	logger  *log.Logger
}

// New creates the game. trackPath may be empty, in which case the start
// button asks for a file first.
func New(trackPath string) *Game {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	canvas := ebiten.NewImage(config.WindowWidth, config.WindowHeight)
	return &Game{
		field:     particle.NewField(rng, config.ParticleCount, config.WindowWidth, config.WindowHeight),
		canvas:    canvas,
		surface:   &canvasSurface{img: canvas},
		button:    newButton("Start"),
		output:    &spectrum.Speaker{},
		trackPath: trackPath,
		prevKey:   map[ebiten.Key]bool{},
		logger:    log.New(os.Stderr, "game: ", log.LstdFlags),
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	clicked := g.button.update(mouseX, mouseY,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	if clicked {
		if err := g.start(); err != nil {
			g.lastErr = err
		}
	}

	if justPressed(ebiten.KeySpace) && g.source != nil {
		g.source.TogglePause()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.field.Render(g.surface)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	screen.DrawImage(g.canvas, nil)
	g.button.draw(screen)
	ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// start wires the source to the field on first use and starts playback.
func (g *Game) start() error {
	if g.source == nil {
		if g.trackPath == "" {
			path, err := selectTrack()
			if err != nil || path == "" {
				return err
			}
			g.trackPath = path
		}
		g.title = spectrum.ReadTitle(g.trackPath)
		g.source = spectrum.NewSource(g.output, spectrum.FileOpener(g.trackPath))
		g.source.SetUpdate(g.field.Bind)
		g.logger.Printf("starting %s", g.trackPath)
	}
	g.source.Start()
	return nil
}

func selectTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.ogg", "*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func (g *Game) status() string {
	s := statusState{err: g.lastErr, title: g.title}
	if g.source != nil {
		s.started = g.source.Playing()
		s.paused = g.source.Paused()
		select {
		case <-g.source.Ready():
			s.ready = true
			s.pos, s.total = g.source.Progress()
		default:
		}
	}
	return s.String()
}

type statusState struct {
	started, ready, paused bool
	title                  string
	pos, total             time.Duration
	err                    error
}

func (s statusState) String() string {
	var line string
	switch {
	case !s.started:
		line = "Press Start to play"
	case !s.ready:
		line = "Loading " + s.title
	case s.paused:
		line = "Paused - Space to play | " + s.title
	default:
		line = "Playing - Space to pause | " + s.title
	}
	if s.ready {
		line += " " + formatDuration(s.pos) + " / " + formatDuration(s.total)
	}
	if s.err != nil {
		line += " | Error: " + s.err.Error()
	}
	return line
}
