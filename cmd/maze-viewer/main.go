package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/maze-mesh/config"
	"github.com/lixenwraith/maze-mesh/level"
	"github.com/lixenwraith/maze-mesh/maze"
	"github.com/lixenwraith/maze-mesh/mesh"
)

const (
	hudRows       = 2
	chimeHz       = 660
	chimeDuration = 60 * time.Millisecond
)

var (
	styleWall  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOpen  = tcell.StyleDefault
	stylePath  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStart = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGoal  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHUD   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

// Viewer shows a top-down preview of generated levels
type Viewer struct {
	screen tcell.Screen
	cfg    *config.Config
	cons   *level.Constructor

	lvl      *level.Level
	seed     int64
	showPath bool
	message  string

	audioInit  bool
	sampleRate beep.SampleRate
}

// NewViewer takes ownership of an initialised screen
func NewViewer(screen tcell.Screen, cfg *config.Config, sound bool) (*Viewer, error) {
	builder, err := mesh.NewBuilderSize(cfg.CellWidth, cfg.CellHeight)
	if err != nil {
		return nil, err
	}
	gen := maze.NewGenerator()
	gen.Threshold = cfg.PlacementThreshold

	v := &Viewer{
		screen: screen,
		cfg:    cfg,
		cons: &level.Constructor{
			Generator: gen,
			Builder:   builder,
			Logger:    log.Default(),
		},
		seed: cfg.Seed,
	}
	if v.seed == 0 {
		v.seed = time.Now().UnixNano()
	}

	if sound {
		if err := v.initAudio(); err != nil {
			// Non-fatal, viewer runs silent
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return v, nil
}

func (v *Viewer) initAudio() error {
	v.sampleRate = beep.SampleRate(44100)
	err := speaker.Init(v.sampleRate, v.sampleRate.N(time.Second/10))
	if err == nil {
		v.audioInit = true
	}
	return err
}

func (v *Viewer) playChime() {
	if !v.audioInit {
		return
	}
	sine, err := generators.SineTone(v.sampleRate, chimeHz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(v.sampleRate.N(chimeDuration), sine))
}

// regenerate builds a new level from the current seed
func (v *Viewer) regenerate() {
	lvl, err := v.cons.Generate(v.cfg.Rows, v.cfg.Cols, maze.NewRandSource(v.seed),
		func() { v.message = "start reached" },
		func() { v.message = "goal reached" },
	)
	if err != nil {
		v.message = err.Error()
		return
	}
	v.lvl = lvl
	v.message = maze.Advisory(v.cfg.Rows, v.cfg.Cols)
	v.playChime()
}

func (v *Viewer) draw() {
	v.screen.Clear()
	width, height := v.screen.Size()

	if v.lvl != nil {
		path := make(map[maze.Point]bool)
		if v.showPath {
			for _, p := range v.lvl.SolutionPath {
				path[p] = true
			}
		}

		g := v.lvl.Grid
		for y := 0; y < g.Rows() && y < height-hudRows; y++ {
			for x := 0; x < g.Cols() && 2*x+1 < width; x++ {
				p := maze.Point{X: x, Y: y}
				r, style := ' ', styleOpen
				switch {
				case p == v.lvl.Start:
					r, style = 'S', styleStart
				case p == v.lvl.Goal:
					r, style = 'G', styleGoal
				case g.IsWall(y, x):
					r, style = '█', styleWall
				case path[p]:
					r, style = '•', stylePath
				}
				// Two columns per cell keeps the aspect roughly square
				v.screen.SetContent(2*x, y, r, nil, style)
				if r == '█' {
					v.screen.SetContent(2*x+1, y, r, nil, style)
				}
			}
		}

		m := v.lvl.Mesh
		status := "unreachable"
		if v.lvl.Reachable() {
			status = fmt.Sprintf("path %d", len(v.lvl.SolutionPath))
		}
		v.drawText(0, height-2, fmt.Sprintf(" seed %d | %dx%d | verts %d | floor tris %d | wall tris %d | %s ",
			v.seed, g.Rows(), g.Cols(), m.VertexCount(), len(m.FloorTriangles)/3, len(m.WallTriangles)/3, status), styleHUD)
	}
	v.drawText(0, height-1, " r: regenerate  p: path  s/g: fire trigger  q: quit  "+v.message, styleOpen)

	v.screen.Show()
}

func (v *Viewer) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			v.seed++
			v.regenerate()
		case 'p':
			v.showPath = !v.showPath
		case 's':
			if v.lvl != nil {
				v.lvl.Enter(level.TriggerStart)
			}
		case 'g':
			if v.lvl != nil {
				v.lvl.Enter(level.TriggerGoal)
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *Viewer) run() {
	v.regenerate()
	v.draw()

	for {
		if !v.handleInput(v.screen.PollEvent()) {
			return
		}
		v.draw()
	}
}

func (v *Viewer) cleanup() {
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid rows")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid columns")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Initial seed (0 = random)")
	flag.Float64Var(&cfg.PlacementThreshold, "threshold", cfg.PlacementThreshold, "Placement threshold")
	sound := flag.Bool("sound", false, "Play a chime on regeneration")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Log lines would corrupt the screen
	log.SetOutput(io.Discard)

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(screen, cfg, *sound)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
