package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	// historyWindow is how many recent state hashes are kept for
	// cycle detection.
	historyWindow = 5

	// refreshInterval forces a reseed after this many ticks even if
	// the population is still evolving.
	refreshInterval = 200
)

// Game owns the driver state: the current generation, the render
// surface, and restart bookkeeping. It is constructed once with
// explicit configuration; no process-wide state is involved.
type Game struct {
	config   utils.Config
	size     model.Size
	current  *model.Generation
	pool     *model.BoardPool
	renderer *model.TerminalRenderer
	logger   *slog.Logger
	rng      *rand.Rand

	statsMu sync.Mutex
	stats   *utils.Stats

	ticks           int // frames across all restarts
	history         []string
	stagnantCount   int
	lastRestartTick int
}

// NewGame seeds generation 1 and prepares the render surface.
func NewGame(config utils.Config, logger *slog.Logger) *Game {
	g := &Game{
		config: config,
		size: model.Size{
			LatitudeMax:  config.LatitudeMax,
			LongitudeMax: config.LongitudeMax,
		},
		pool:     model.NewBoardPool(),
		renderer: &model.TerminalRenderer{},
		logger:   logger,
		stats:    utils.NewStats(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.current = g.seedGeneration()
	return g
}

// seedGeneration builds generation 1 from random coordinates inside
// the configured bound. Duplicate picks are dropped by NewGeneration,
// so the population may come in under SeedCount.
func (g *Game) seedGeneration() *model.Generation {
	coords := make([]model.Coordinate, 0, g.config.SeedCount)
	for i := 0; i < g.config.SeedCount; i++ {
		coords = append(coords, model.Coordinate{
			Latitude:  g.rng.Intn(g.size.LatitudeMax + 1),
			Longitude: g.rng.Intn(g.size.LongitudeMax + 1),
		})
	}
	return model.NewGeneration(coords)
}

// Run drives the tick loop until the context is canceled or the
// generation cap is reached.
func (g *Game) Run(ctx context.Context) error {
	g.logger.Info("game started",
		"latitude_max", g.size.LatitudeMax,
		"longitude_max", g.size.LongitudeMax,
		"population", g.current.Population(),
	)

	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("shutting down",
				"ticks", g.ticks,
				"runtime_seconds", time.Since(g.StatsSummary().StartTime).Seconds(),
			)
			return nil
		case <-ticker.C:
		}

		frameStart := time.Now()
		g.tick(time.Since(lastFrameTime))
		lastFrameTime = frameStart

		if g.config.MaxGenerations > 0 && g.ticks >= g.config.MaxGenerations {
			g.logger.Info("reached generation cap", "max_generations", g.config.MaxGenerations)
			return nil
		}
	}
}

// tick renders one frame and replaces the current generation, either
// by advancing it or by reseeding when a restart condition fires.
func (g *Game) tick(frameDuration time.Duration) {
	g.ticks++
	population := g.current.Population()

	g.statsMu.Lock()
	g.stats.Update(g.ticks, population, frameDuration)
	g.statsMu.Unlock()

	// Compare against previous states before recording the current one.
	if g.isStagnant() {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.updateHistory()

	board := g.pool.Get(g.size)
	board.Render(g.current)
	g.renderer.Clear()
	g.displayStatus(population)
	g.renderer.Display(board)
	model.BoardToPool(board, g.pool)

	shouldRestart, reason := checkRestartConditions(population, g.stagnantCount, g.ticks, g.config)
	if shouldRestart && g.config.AutoRestart {
		g.restart(reason)
		return
	}

	g.current = g.current.Advance(g.size)
}

// displayStatus shows the current game status
func (g *Game) displayStatus(population int) {
	density := float64(population) /
		float64((g.size.LatitudeMax+1)*(g.size.LongitudeMax+1)) * 100

	status := "Active"
	if g.stagnantCount > 0 {
		status = fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	}
	if population == 0 {
		status = "Extinct"
	}

	stats := g.StatsSummary()
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.current.Number(), population, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())
	if g.ticks > g.lastRestartTick {
		fmt.Printf("Generations since restart: %d\n", g.ticks-g.lastRestartTick)
	}
	fmt.Println()
}

// updateHistory records the current state hash, keeping only the most
// recent window.
func (g *Game) updateHistory() {
	g.history = append(g.history, g.current.Hash())
	if len(g.history) > historyWindow {
		g.history = g.history[1:]
	}
}

// isStagnant reports whether the current state matches any of the last
// three recorded states, catching static boards and short oscillators.
func (g *Game) isStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.current.Hash()
	for i := 1; i <= 3 && i <= len(g.history); i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount, ticks int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if ticks > 0 && ticks%refreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restart reseeds the board and resets the stagnation bookkeeping.
func (g *Game) restart(reason string) {
	g.logger.Info("restarting", "reason", reason, "tick", g.ticks)

	g.current = g.seedGeneration()
	g.history = nil
	g.stagnantCount = 0
	g.lastRestartTick = g.ticks

	g.logger.Info("new seed loaded", "population", g.current.Population())
}

// ReportStats periodically logs run statistics until the context is
// canceled.
func (g *Game) ReportStats(ctx context.Context) error {
	ticker := time.NewTicker(g.config.StatsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := g.StatsSummary()
			g.logger.Info("stats",
				"generations_per_second", stats.GenerationsPerSecond,
				"average_population", stats.AveragePopulation,
				"peak_population", stats.PeakPopulation,
				"total_generations", stats.TotalGenerations,
			)
		}
	}
}

// StatsSummary copies the stats under the lock so the reporter never
// races the tick loop.
func (g *Game) StatsSummary() utils.Stats {
	g.statsMu.Lock()
	defer g.statsMu.Unlock()
	return *g.stats
}
