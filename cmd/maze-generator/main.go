package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/maze-mesh/config"
	"github.com/lixenwraith/maze-mesh/level"
	"github.com/lixenwraith/maze-mesh/maze"
	"github.com/lixenwraith/maze-mesh/mesh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid rows [odd preferred]")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid columns [odd preferred]")
	flag.Float64Var(&cfg.CellWidth, "width", cfg.CellWidth, "Hall width")
	flag.Float64Var(&cfg.CellHeight, "height", cfg.CellHeight, "Hall height")
	flag.Float64Var(&cfg.PlacementThreshold, "threshold", cfg.PlacementThreshold, "Chance an even cell stays open [0.0 - 1.0]")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (0 = random)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write debug log to the log directory")
	interactive := flag.Bool("i", false, "Interactive prompt loop")
	objPath := flag.String("obj", "", "Write the mesh as Wavefront OBJ to this path")
	batch := flag.Int("batch", 0, "Generate this many mazes concurrently into -out")
	outDir := flag.String("out", "mazes", "Output directory for -batch")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg.LogDir, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	switch {
	case *interactive:
		runInteractive(cfg)
	case *batch > 0:
		startT := time.Now()
		n, err := runBatch(context.Background(), cfg, *batch, *outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Batch failed after %d mazes: %v\n", n, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d mazes to %s in %v\n", n, *outDir, time.Since(startT))
	default:
		lvl, err := generate(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		report(lvl)
		if *objPath != "" {
			if err := exportOBJ(*objPath, lvl.Mesh); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Mesh written to %s\n", *objPath)
		}
	}
}

func newConstructor(cfg *config.Config) (*level.Constructor, error) {
	builder, err := mesh.NewBuilderSize(cfg.CellWidth, cfg.CellHeight)
	if err != nil {
		return nil, err
	}
	gen := maze.NewGenerator()
	gen.Threshold = cfg.PlacementThreshold
	return &level.Constructor{
		Generator: gen,
		Builder:   builder,
		Logger:    log.Default(),
	}, nil
}

func generate(cfg *config.Config) (*level.Level, error) {
	c, err := newConstructor(cfg)
	if err != nil {
		return nil, err
	}
	if msg := maze.Advisory(cfg.Rows, cfg.Cols); msg != "" {
		fmt.Printf("Note: %s\n", msg)
	}
	return c.Generate(cfg.Rows, cfg.Cols, maze.NewRandSource(cfg.Seed), nil, nil)
}

func runInteractive(cfg *config.Config) {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== PILLAR MAZE MESH GENERATOR ===")

		cfg.Rows = getInt(reader, fmt.Sprintf("Rows [Odd preferred] (default %d): ", cfg.Rows), cfg.Rows)
		cfg.Cols = getInt(reader, fmt.Sprintf("Cols [Odd preferred] (default %d): ", cfg.Cols), cfg.Cols)
		cfg.PlacementThreshold = getFloat(reader,
			fmt.Sprintf("Placement Threshold [0.0 - 1.0] (default %g): ", cfg.PlacementThreshold), cfg.PlacementThreshold)

		fmt.Println("\nGenerating...")
		startT := time.Now()
		lvl, err := generate(cfg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		} else {
			fmt.Printf("Done in %v\n", time.Since(startT))
			report(lvl)
		}

		fmt.Print("\nGenerate another? [Y/n]: ")
		cont, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(cont)) == "n" {
			break
		}
	}
}

func report(lvl *level.Level) {
	m := lvl.Mesh
	fmt.Printf("Grid Dimensions: %dx%d, open cells: %d\n", lvl.Grid.Cols(), lvl.Grid.Rows(), lvl.Grid.OpenCount())
	fmt.Printf("Mesh: %d vertices, %d floor/ceiling triangles, %d wall triangles\n",
		m.VertexCount(), len(m.FloorTriangles)/3, len(m.WallTriangles)/3)

	if lvl.Reachable() {
		fmt.Printf("Solution Path Length: %d steps\n", len(lvl.SolutionPath))
	} else {
		fmt.Println("Status: Unsolvable (Isolated Start/End)")
	}

	draw(lvl)
}

func draw(lvl *level.Level) {
	pathMap := make(map[maze.Point]bool)
	for _, p := range lvl.SolutionPath {
		pathMap[p] = true
	}

	var sb strings.Builder
	for y := 0; y < lvl.Grid.Rows(); y++ {
		for x := 0; x < lvl.Grid.Cols(); x++ {
			p := maze.Point{X: x, Y: y}

			switch {
			case p == lvl.Start:
				sb.WriteByte('S')
			case p == lvl.Goal:
				sb.WriteByte('E')
			case lvl.Grid.IsWall(y, x):
				sb.WriteRune('█')
			case pathMap[p]:
				sb.WriteRune('•')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

func exportOBJ(path string, b *mesh.Buffers) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := mesh.WriteOBJ(f, b, mesh.DefaultMaterials); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, prompt string, def float64) float64 {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
