package renderer

import (
	"runtime"
	"sync"
	"time"
)

// defaultTileSize is the edge length of the square tiles handed to workers
const defaultTileSize = 64

// TileBounds is a half-open pixel rectangle [X0,X1) × [Y0,Y1)
type TileBounds struct {
	X0, Y0, X1, Y1 int
}

// RenderStats summarizes a completed render
type RenderStats struct {
	TotalPixels int
	Tiles       int
	Workers     int
	Elapsed     time.Duration
}

// tileGrid splits the image into tiles of at most tileSize on a side
func tileGrid(width, height, tileSize int) []TileBounds {
	tiles := make([]TileBounds, 0, ((width+tileSize-1)/tileSize)*((height+tileSize-1)/tileSize))

	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, TileBounds{
				X0: x,
				Y0: y,
				X1: min(x+tileSize, width),
				Y1: min(y+tileSize, height),
			})
		}
	}

	return tiles
}

// RenderParallel renders the full frame across a pool of workers and returns
// the HDR framebuffer. Each worker pulls tiles from a shared queue and writes
// only to its tile's cells; the scene is shared read-only and the per-pixel
// computation is pure, so no locking is needed. numWorkers <= 0 uses the CPU
// count.
func (rt *Raytracer) RenderParallel(numWorkers int) (*Framebuffer, RenderStats) {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	fb := NewFramebuffer(rt.config.Width, rt.config.Height)
	tiles := tileGrid(rt.config.Width, rt.config.Height, defaultTileSize)

	taskQueue := make(chan TileBounds, len(tiles))
	for _, tile := range tiles {
		taskQueue <- tile
	}
	close(taskQueue)

	start := time.Now()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range taskQueue {
				rt.renderBounds(fb, tile)
			}
		}()
	}
	wg.Wait()

	stats := RenderStats{
		TotalPixels: rt.config.Width * rt.config.Height,
		Tiles:       len(tiles),
		Workers:     numWorkers,
		Elapsed:     time.Since(start),
	}

	rt.logger.Debug().
		Int("workers", stats.Workers).
		Int("tiles", stats.Tiles).
		Int("pixels", stats.TotalPixels).
		Dur("elapsed", stats.Elapsed).
		Msg("render pass complete")

	return fb, stats
}
