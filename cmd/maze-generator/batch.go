package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/maze-mesh/config"
	"github.com/lixenwraith/maze-mesh/maze"
)

// runBatch generates n mazes in parallel, each from its own seeded source,
// and writes maze_NNN.obj files into dir. Returns the number written.
func runBatch(ctx context.Context, cfg *config.Config, n int, dir string) (int, error) {
	c, err := newConstructor(cfg)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}

	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	var written atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for k := 0; k < n; k++ {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := base + int64(k)
			lvl, err := c.Generate(cfg.Rows, cfg.Cols, maze.NewRandSource(seed), nil, nil)
			if err != nil {
				return fmt.Errorf("maze %d (seed %d): %w", k, seed, err)
			}
			path := filepath.Join(dir, fmt.Sprintf("maze_%03d.obj", k))
			if err := exportOBJ(path, lvl.Mesh); err != nil {
				return err
			}
			written.Add(1)
			return nil
		})
	}

	err = g.Wait()
	return int(written.Load()), err
}
